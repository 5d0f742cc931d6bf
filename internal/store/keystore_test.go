// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeys(t *testing.T) models.UserKeys {
	t.Helper()
	gen := func() *rsa.PrivateKey {
		k, err := rsa.GenerateKey(rand.Reader, 1024)
		require.NoError(t, err)
		return k
	}
	return models.UserKeys{Signature: gen(), Authentication: gen(), Encryption: gen()}
}

func newTestUser(t *testing.T, keys models.UserKeys, sealed []byte) *models.User {
	t.Helper()
	bank := models.NewBank("https://bank.example/ebics", "Bank", "EBIXHOST", false)
	partner := models.NewPartner(bank, "P1")
	return models.NewUser(partner, "U1", models.Profile{Name: "Jane"}, keys, sealed)
}

func TestFileKeyStore_SaveUserKeys(t *testing.T) {
	dir := t.TempDir()
	user := newTestUser(t, newTestKeys(t), []byte("sealed-envelope"))

	require.NoError(t, NewFileKeyStore(logger.Nop()).SaveUserKeys(dir, user))

	sealed, err := os.ReadFile(filepath.Join(dir, "U1.keys"))
	require.NoError(t, err)
	assert.Equal(t, "sealed-envelope", string(sealed))

	for _, name := range []string{"U1-a005.pem", "U1-e002.pem", "U1-x002.pem"} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		block, _ := pem.Decode(raw)
		require.NotNil(t, block, name)
		assert.Equal(t, "PUBLIC KEY", block.Type)
	}
}

func TestFileKeyStore_NoSealedKeys(t *testing.T) {
	user := newTestUser(t, models.UserKeys{}, nil)
	assert.Error(t, NewFileKeyStore(logger.Nop()).SaveUserKeys(t.TempDir(), user))
}

func TestFileKeyStore_MissingDirectory(t *testing.T) {
	user := newTestUser(t, models.UserKeys{}, []byte("x"))
	err := NewFileKeyStore(logger.Nop()).SaveUserKeys(filepath.Join(t.TempDir(), "absent"), user)
	assert.Error(t, err)
}
