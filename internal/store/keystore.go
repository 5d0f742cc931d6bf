// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
)

const (
	keystoreExt  = ".keys"
	publicKeyExt = ".pem"
)

type fileKeyStore struct {
	logger *logger.Logger
}

// NewFileKeyStore returns a [KeyStore] writing plain files.
func NewFileKeyStore(logger *logger.Logger) KeyStore {
	return &fileKeyStore{logger: logger}
}

// SaveUserKeys writes <userId>.keys with the password-sealed private keys
// and, when the keys are unlocked, one <userId>-<version>.pem public key per
// key version.
func (k *fileKeyStore) SaveUserKeys(dir string, user *models.User) error {
	sealed := user.SealedKeys()
	if len(sealed) == 0 {
		return fmt.Errorf("user %s has no sealed key material", user.UserID())
	}

	keysPath := filepath.Join(dir, user.UserID()+keystoreExt)
	if err := os.WriteFile(keysPath, sealed, 0o600); err != nil {
		k.logger.Err(err).Str("func", "fileKeyStore.SaveUserKeys").Str("file", keysPath).Msg("failed to write keystore")
		return fmt.Errorf("failed to write keystore %s: %w", keysPath, err)
	}

	keys, ok := user.Keys()
	if !ok {
		return nil
	}

	for _, kind := range models.LetterKinds() {
		priv := keys.Key(kind)
		if priv == nil {
			continue
		}
		der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
		if err != nil {
			return fmt.Errorf("failed to encode %s public key: %w", kind, err)
		}

		name := user.UserID() + "-" + strings.ToLower(string(kind)) + publicKeyExt
		block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
		if err = os.WriteFile(filepath.Join(dir, name), block, 0o644); err != nil {
			return fmt.Errorf("failed to write %s public key: %w", kind, err)
		}
	}

	return nil
}
