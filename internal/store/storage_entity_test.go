// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"testing"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/mock"
	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEntityStorage_Serialize_ClearsDirtyFlagOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRecordRepository(ctrl)
	storage := NewEntityStorage(repo, logger.Nop())

	bank := models.NewBank("https://bank.example", "Bank", "EBIXHOST", false)
	require.True(t, bank.NeedsSave())

	repo.EXPECT().
		PutRecord(gomock.Any(), "EBIXHOST", models.RecordBank, gomock.Any()).
		Return(nil)

	require.NoError(t, storage.Serialize(context.Background(), bank))
	assert.False(t, bank.NeedsSave())
}

func TestEntityStorage_Serialize_KeepsDirtyFlagOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRecordRepository(ctrl)
	storage := NewEntityStorage(repo, logger.Nop())

	partner := models.NewPartner(models.NewBank("https://bank.example", "Bank", "EBIXHOST", false), "P1")

	repo.EXPECT().
		PutRecord(gomock.Any(), "partner-P1", models.RecordPartner, gomock.Any()).
		Return(assert.AnError)

	err := storage.Serialize(context.Background(), partner)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, partner.NeedsSave(), "a failed write must leave the entity dirty")
}

func TestEntityStorage_RoundTripThroughFiles(t *testing.T) {
	storage := NewEntityStorage(NewFileRecordRepository(t.TempDir(), logger.Nop()), logger.Nop())
	ctx := context.Background()

	bank := models.NewBank("https://bank.example", "Bank", "EBIXHOST", true)
	require.NoError(t, storage.Serialize(ctx, bank))

	rc, err := storage.Deserialize(ctx, models.BankKey("EBIXHOST"))
	require.NoError(t, err)
	defer rc.Close()

	loaded, err := models.ReadBank(rc)
	require.NoError(t, err)
	assert.Equal(t, "EBIXHOST", loaded.HostID())
	assert.True(t, loaded.UseCertificate())
	assert.False(t, loaded.NeedsSave())
}

func TestEntityStorage_Deserialize_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRecordRepository(ctrl)
	storage := NewEntityStorage(repo, logger.Nop())

	repo.EXPECT().GetRecord(gomock.Any(), "user-U1").Return(nil, ErrRecordNotFound)

	rc, err := storage.Deserialize(context.Background(), "user-U1")
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestEntityStorage_Deserialize_Payload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRecordRepository(ctrl)
	storage := NewEntityStorage(repo, logger.Nop())

	repo.EXPECT().GetRecord(gomock.Any(), "k").Return([]byte("raw"), nil)

	rc, err := storage.Deserialize(context.Background(), "k")
	require.NoError(t, err)
	raw, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(raw))
}
