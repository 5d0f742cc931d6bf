// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-ebics-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntityStorage is the persistence service of the client. It writes entities
// under their stable record keys and hands raw records back to the entity
// constructors in the models package.
type EntityStorage interface {
	// Serialize writes the entity record. The entity's dirty flag is cleared
	// only when the write succeeds.
	Serialize(ctx context.Context, entity models.Persistable) error
	// Deserialize opens the record stored under key. It returns
	// [ErrRecordNotFound] when no such record exists.
	Deserialize(ctx context.Context, key string) (io.ReadCloser, error)
}

// RecordRepository is a low-level keyed record store.
type RecordRepository interface {
	PutRecord(ctx context.Context, key string, kind models.RecordKind, payload []byte) error
	GetRecord(ctx context.Context, key string) ([]byte, error)
}

// DirectoryProvisioner creates the local directories of a user.
type DirectoryProvisioner interface {
	// EnsureDirectories creates every path or fails; a failure removes the
	// directories created by the same call.
	EnsureDirectories(paths ...string) error
}

// KeyStore exports user key material.
type KeyStore interface {
	// SaveUserKeys writes the sealed private keys and the public keys of
	// user into dir.
	SaveUserKeys(dir string, user *models.User) error
}
