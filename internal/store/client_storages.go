// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ebics-client/internal/config"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
)

// ClientStorages groups the on-disk components of the client into a single
// value that can be passed to the service layer.
type ClientStorages struct {
	// EntityStorage persists banks, partners and users.
	EntityStorage EntityStorage
	// Directories provisions the per-user directory layout.
	Directories DirectoryProvisioner
	// KeyStore exports key material on user creation.
	KeyStore KeyStore

	db *DB
}

// NewClientStorages initialises the client storage layer. With the sqlite
// backend it opens (creating if needed) the database at cfg.DSN and runs the
// pending migrations; with the files backend records live under
// <root>/serialized.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, session models.Configuration, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	storages := &ClientStorages{
		Directories: NewDirectoryProvisioner(),
		KeyStore:    NewFileKeyStore(logger),
	}

	switch cfg.Backend {
	case config.BackendFiles:
		storages.EntityStorage = NewEntityStorage(NewFileRecordRepository(session.SerializationDirectory(), logger), logger)
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, errors.Join(fmt.Errorf("migration failed: %w", err), db.Close())
		}
		storages.db = db
		storages.EntityStorage = NewEntityStorage(NewRecordRepository(db, logger), logger)
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", config.ErrInvalidSetting, cfg.Backend)
	}

	return storages, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
