// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestBuilder(t *testing.T) *configBuilder {
	t.Helper()
	home := t.TempDir()
	b := newConfigBuilder()
	b.homeDir = func() (string, error) { return home, nil }
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newTestBuilder(t).build()
	require.NoError(t, err)

	root := filepath.Join("ebics", "client")
	assert.Equal(t, root, cfg.Storage.RootDir)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(root, "ebics.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_DefaultRootInHomeWhenPresent(t *testing.T) {
	b := newTestBuilder(t)
	home, _ := b.homeDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "ebics", "client"), 0o750))

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "ebics", "client"), cfg.Storage.RootDir)
}

func TestBuild_HomeDirErrorFallsBackToRelative(t *testing.T) {
	b := newConfigBuilder()
	b.homeDir = func() (string, error) { return "", errors.New("no home") }

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("ebics", "client"), cfg.Storage.RootDir)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder(t)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newTestBuilder(t)
	b.configs = append(b.configs,
		&StructuredConfig{Bank: Bank{HostID: "FIRST", Name: "Bank"}},
		&StructuredConfig{Bank: Bank{HostID: "SECOND"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "SECOND", cfg.Bank.HostID)
	assert.Equal(t, "Bank", cfg.Bank.Name)
}

func TestBuild_ZeroFieldsDoNotOverride(t *testing.T) {
	b := newTestBuilder(t)
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{RootDir: "/data"}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.Storage.RootDir)
	assert.Equal(t, filepath.Join("/data", "ebics.db"), cfg.Storage.DB.DSN)
}

func TestBuild_ExplicitFalseOverridesTrue(t *testing.T) {
	yes, no := true, false
	b := newTestBuilder(t)
	b.configs = append(b.configs,
		&StructuredConfig{Bank: Bank{UseCertificate: &yes}, Subscriber: Subscriber{SkipKeystore: &yes}},
		&StructuredConfig{Bank: Bank{UseCertificate: &no}, Subscriber: Subscriber{SkipKeystore: &no}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Bank.UseCertificate)
	assert.False(t, *cfg.Bank.UseCertificate)
	require.NotNil(t, cfg.Subscriber.SkipKeystore)
	assert.False(t, *cfg.Subscriber.SkipKeystore)
	assert.True(t, yes, "earlier source is left untouched")
}

func TestBuild_UnsetBoolKeepsEarlierValue(t *testing.T) {
	yes := true
	b := newTestBuilder(t)
	b.configs = append(b.configs,
		&StructuredConfig{Bank: Bank{UseCertificate: &yes}},
		&StructuredConfig{Bank: Bank{HostID: "EBIXHOST"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Bank.UseCertificate)
	assert.True(t, *cfg.Bank.UseCertificate)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("BANK_HOST_ID", "EBIXHOST")
	t.Setenv("SUBSCRIBER_USER_ID", "USER1")
	t.Setenv("STORAGE_DB_DSN", "/tmp/x.db")

	b := newTestBuilder(t).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "EBIXHOST", b.configs[0].Bank.HostID)
	assert.Equal(t, "USER1", b.configs[0].Subscriber.UserID)
	assert.Equal(t, "/tmp/x.db", b.configs[0].Storage.DB.DSN)
	assert.Nil(t, b.configs[0].Bank.UseCertificate, "unset boolean stays nil")
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newTestBuilder(t).withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withOverrides ─────────────────────────────────────────────────────────────

func TestWithOverrides_WinOverEnv(t *testing.T) {
	t.Setenv("STORAGE_ROOT_DIR", "/from/env")

	cfg, err := newTestBuilder(t).
		withEnv().
		withOverrides(Overrides{RootDir: "/from/flag"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Storage.RootDir)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoFileIsNoop(t *testing.T) {
	b := newTestBuilder(t).withOverrides(Overrides{RootDir: t.TempDir()}).withFile()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_ExplicitPath(t *testing.T) {
	path := writeTempConfig(t, "client.json", `{"bank":{"host_id":"FROMFILE"}}`)

	b := newTestBuilder(t).withOverrides(Overrides{ConfigFilePath: path}).withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "FROMFILE", b.configs[1].Bank.HostID)
}

func TestWithFile_DefaultFileInRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "ebics.yaml"),
		[]byte("bank:\n  name: Default Bank\n"), 0o600))

	cfg, err := newTestBuilder(t).withOverrides(Overrides{RootDir: root}).withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "Default Bank", cfg.Bank.Name)
}

func TestWithFile_MissingExplicitPathSetsError(t *testing.T) {
	b := newTestBuilder(t).
		withOverrides(Overrides{ConfigFilePath: filepath.Join(t.TempDir(), "absent.yaml")}).
		withFile()
	assert.Error(t, b.err)
}

func TestGetStructuredConfig_FileFalseOverridesEnvTrue(t *testing.T) {
	t.Setenv("BANK_USE_CERTIFICATE", "true")
	t.Setenv("SUBSCRIBER_SKIP_KEYSTORE", "true")
	path := writeTempConfig(t, "client.yaml",
		"bank:\n  use_certificate: false\nsubscriber:\n  skip_keystore: false\n")

	cfg, err := GetStructuredConfig(Overrides{RootDir: t.TempDir(), ConfigFilePath: path})
	require.NoError(t, err)

	client := newClientConfig(cfg)
	assert.False(t, client.Bank.UseCertificate)
	assert.True(t, client.Subscriber.SaveCertificates)
}

func TestWithFile_OverridesStillWin(t *testing.T) {
	path := writeTempConfig(t, "client.yaml", "storage:\n  root_dir: /from/file\n")

	cfg, err := GetStructuredConfig(Overrides{RootDir: "/from/flag", ConfigFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Storage.RootDir)
}
