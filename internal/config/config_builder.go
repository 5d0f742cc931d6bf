// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

const (
	defaultConfigFileName = "ebics.yaml"
	defaultDBFileName     = "ebics.db"
	defaultBackend        = BackendSQLite
	defaultRequestTimeout = 30 * time.Second
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFiles  = "files"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// homeDir is swapped in tests
	homeDir func() (string, error)
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		homeDir: os.UserHomeDir,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	b.applyDefaults(config)
	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withOverrides(o Overrides) *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Storage:        Storage{RootDir: o.RootDir},
		ConfigFilePath: o.ConfigFilePath,
	})
	return b
}

// withFile merges the config file named by the sources collected so far. When
// no file is named, <root>/ebics.yaml is used if it exists.
func (b *configBuilder) withFile() *configBuilder {
	var path, rootDir string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
		if cfg.Storage.RootDir != "" {
			rootDir = cfg.Storage.RootDir
		}
	}

	if path == "" {
		if rootDir == "" {
			rootDir = b.defaultRootDir()
		}
		candidate := filepath.Join(rootDir, defaultConfigFileName)
		if _, err := os.Stat(candidate); err != nil {
			return b
		}
		path = candidate
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}

func (b *configBuilder) applyDefaults(cfg *StructuredConfig) {
	if cfg.Storage.RootDir == "" {
		cfg.Storage.RootDir = b.defaultRootDir()
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaultBackend
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.Storage.RootDir, defaultDBFileName)
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}

// defaultRootDir returns ~/ebics/client when it exists and the relative
// ebics/client directory otherwise.
func (b *configBuilder) defaultRootDir() string {
	relative := filepath.Join("ebics", "client")

	home, err := b.homeDir()
	if err != nil {
		return relative
	}
	inHome := filepath.Join(home, relative)
	if info, err := os.Stat(inHome); err == nil && info.IsDir() {
		return inHome
	}

	return relative
}
