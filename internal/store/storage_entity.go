// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
)

// entityStorage is the default implementation of [EntityStorage].
//
// It encodes entities through their own record codec and delegates the keyed
// write to a [RecordRepository], which is either the sqlite records table or
// a directory of record files.
type entityStorage struct {
	repository RecordRepository
	logger     *logger.Logger
}

// NewEntityStorage constructs an [EntityStorage] writing through repository.
func NewEntityStorage(repository RecordRepository, logger *logger.Logger) EntityStorage {
	return &entityStorage{
		repository: repository,
		logger:     logger,
	}
}

func (e *entityStorage) Serialize(ctx context.Context, entity models.Persistable) error {
	key := entity.StorageKey()

	payload, err := entity.EncodeRecord()
	if err != nil {
		e.logger.Err(err).Str("func", "entityStorage.Serialize").Str("key", key).Msg("failed to encode entity")
		return fmt.Errorf("%w: %w", ErrNotSerializable, err)
	}

	if err = e.repository.PutRecord(ctx, key, entity.RecordKind(), payload); err != nil {
		return fmt.Errorf("failed to serialize %s %q: %w", entity.RecordKind(), key, err)
	}

	entity.MarkSaved()
	e.logger.Debug().Str("func", "entityStorage.Serialize").Str("key", key).Msg("entity serialized")

	return nil
}

func (e *entityStorage) Deserialize(ctx context.Context, key string) (io.ReadCloser, error) {
	payload, err := e.repository.GetRecord(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", key, err)
	}

	return io.NopCloser(bytes.NewReader(payload)), nil
}
