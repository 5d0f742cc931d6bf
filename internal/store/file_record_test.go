// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecordRepository_PutThenGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "serialized")
	repo := NewFileRecordRepository(dir, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.PutRecord(ctx, "partner-P1", models.RecordPartner, []byte("first")))
	require.NoError(t, repo.PutRecord(ctx, "partner-P1", models.RecordPartner, []byte("second")))

	payload, err := repo.GetRecord(ctx, "partner-P1")
	require.NoError(t, err)
	assert.Equal(t, "second", string(payload))

	_, err = os.Stat(filepath.Join(dir, "partner-P1.json"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileRecordRepository_GetMissing(t *testing.T) {
	repo := NewFileRecordRepository(t.TempDir(), logger.Nop())

	_, err := repo.GetRecord(context.Background(), "user-none")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFileRecordRepository_RejectsPathKeys(t *testing.T) {
	repo := NewFileRecordRepository(t.TempDir(), logger.Nop())

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		err := repo.PutRecord(context.Background(), key, models.RecordUser, []byte("x"))
		assert.Error(t, err, "key %q", key)
	}
}

func TestFileRecordRepository_CanceledContext(t *testing.T) {
	repo := NewFileRecordRepository(t.TempDir(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.PutRecord(ctx, "k", models.RecordBank, nil), context.Canceled)
	_, err := repo.GetRecord(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
