// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewRecordRepository returns a [RecordRepository] backed by the records
// table of db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *recordRepository) PutRecord(ctx context.Context, key string, kind models.RecordKind, payload []byte) error {
	query, args, err := buildPutRecordQuery(key, kind, payload, r.now())
	if err != nil {
		r.logger.Err(err).Str("func", "recordRepository.PutRecord").Str("key", key).Msg("failed to build upsert query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "recordRepository.PutRecord").
			Str("key", key).
			Str("kind", string(kind)).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("failed to save record (key=%s): %w", key, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows (key=%s): %w", key, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: key=%s", ErrRecordNotSaved, key)
	}

	return nil
}

func (r *recordRepository) GetRecord(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetRecordQuery(key)
	if err != nil {
		r.logger.Err(err).Str("func", "recordRepository.GetRecord").Str("key", key).Msg("failed to build select query")
		return nil, err
	}

	var payload []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: key=%s", ErrRecordNotFound, key)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "recordRepository.GetRecord").
			Str("key", key).
			Msg("failed to query record")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return payload, nil
}
