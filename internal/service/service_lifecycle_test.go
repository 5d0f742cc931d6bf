// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/mock"
	"github.com/MKhiriev/go-ebics-client/internal/store"
	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// registryWithDirtyChain registers a new, unsaved bank, partner and user.
func registryWithDirtyChain() (*Registry, *models.User) {
	r := NewRegistry()
	bank := r.CreateBank("https://bank.example", "Bank", testHostID, false)
	partner := r.CreatePartner(bank, testPartnerID)
	user := r.CreateUser(partner, testUserID, models.Profile{}, models.UserKeys{}, nil)
	return r, user
}

func TestShutdown_PersistsUsersThenPartnersThenBanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockEntityStorage(ctrl)
	traces := mock.NewMockManager(ctrl)
	registry, _ := registryWithDirtyChain()

	gomock.InOrder(
		storage.EXPECT().Serialize(gomock.Any(), storageKey("user-"+testUserID)).Return(nil),
		storage.EXPECT().Serialize(gomock.Any(), storageKey("partner-"+testPartnerID)).Return(nil),
		storage.EXPECT().Serialize(gomock.Any(), storageKey(testHostID)).Return(nil),
		traces.EXPECT().Clear().Return(nil),
	)

	svc := NewLifecycleService(registry, storage, traces, logger.Nop())
	require.NoError(t, svc.Shutdown(context.Background()))
}

func TestShutdown_SkipsCleanEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockEntityStorage(ctrl)
	traces := mock.NewMockManager(ctrl)
	registry, user := registryWithDirtyChain()
	user.MarkSaved()
	user.Partner().Bank().MarkSaved()

	storage.EXPECT().Serialize(gomock.Any(), storageKey("partner-"+testPartnerID)).Return(nil)
	traces.EXPECT().Clear().Return(nil)

	svc := NewLifecycleService(registry, storage, traces, logger.Nop())
	require.NoError(t, svc.Shutdown(context.Background()))
}

func TestShutdown_ContinuesAfterFailureAndClearsTraces(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockEntityStorage(ctrl)
	traces := mock.NewMockManager(ctrl)
	registry, _ := registryWithDirtyChain()

	gomock.InOrder(
		storage.EXPECT().Serialize(gomock.Any(), storageKey("user-"+testUserID)).Return(assert.AnError),
		storage.EXPECT().Serialize(gomock.Any(), storageKey("partner-"+testPartnerID)).Return(nil),
		storage.EXPECT().Serialize(gomock.Any(), storageKey(testHostID)).Return(assert.AnError),
		traces.EXPECT().Clear().Return(nil),
	)

	svc := NewLifecycleService(registry, storage, traces, logger.Nop())
	err := svc.Shutdown(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "user-"+testUserID)
	assert.Contains(t, err.Error(), testHostID)
}

func TestShutdown_ReportsTraceClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockEntityStorage(ctrl)
	traces := mock.NewMockManager(ctrl)

	traces.EXPECT().Clear().Return(assert.AnError)

	svc := NewLifecycleService(NewRegistry(), storage, traces, logger.Nop())
	require.ErrorIs(t, svc.Shutdown(context.Background()), assert.AnError)
}

func TestShutdown_ClearsDirtyFlagsThroughRealStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	traces := mock.NewMockManager(ctrl)
	traces.EXPECT().Clear().Return(nil)

	storage := store.NewEntityStorage(store.NewFileRecordRepository(t.TempDir(), logger.Nop()), logger.Nop())
	registry, user := registryWithDirtyChain()
	user.MarkINISent()

	svc := NewLifecycleService(registry, storage, traces, logger.Nop())
	require.NoError(t, svc.Shutdown(context.Background()))

	assert.False(t, user.NeedsSave())
	assert.False(t, user.Partner().NeedsSave())
	assert.False(t, user.Partner().Bank().NeedsSave())

	rc, err := storage.Deserialize(context.Background(), models.UserKey(testUserID))
	require.NoError(t, err)
	defer rc.Close()
	loaded, err := models.ReadUser(user.Partner(), rc)
	require.NoError(t, err)
	assert.True(t, loaded.IsINISent())
}

func TestShutdown_PersistsAfterRunContextIsCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	traces := mock.NewMockManager(ctrl)
	traces.EXPECT().Clear().Return(nil)

	storage := store.NewEntityStorage(store.NewFileRecordRepository(t.TempDir(), logger.Nop()), logger.Nop())
	registry, user := registryWithDirtyChain()
	user.Partner().NextOrderID()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewLifecycleService(registry, storage, traces, logger.Nop())
	require.NoError(t, svc.Shutdown(ctx))

	assert.False(t, user.Partner().NeedsSave())

	rc, err := storage.Deserialize(context.Background(), models.PartnerKey(testPartnerID))
	require.NoError(t, err)
	defer rc.Close()
	loaded, err := models.ReadPartner(user.Partner().Bank(), rc)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), loaded.OrderCounter())
}
