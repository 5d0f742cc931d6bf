// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ebics-client/models"
)

const recordsTable = "records"

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildPutRecordQuery builds an upsert of a single record.
func buildPutRecordQuery(key string, kind models.RecordKind, payload []byte, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(recordsTable).
		Columns("key", "kind", "payload", "updated_at").
		Values(key, string(kind), payload, now.UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET kind = excluded.kind, payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetRecordQuery builds a select of the payload stored under key.
func buildGetRecordQuery(key string) (string, []any, error) {
	query, args, err := psql.
		Select("payload").
		From(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
