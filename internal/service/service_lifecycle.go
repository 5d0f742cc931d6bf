// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/store"
	"github.com/MKhiriev/go-ebics-client/internal/trace"
	"github.com/MKhiriev/go-ebics-client/models"
)

type lifecycleService struct {
	registry *Registry
	storage  store.EntityStorage
	traces   trace.Manager

	logger *logger.Logger
}

func NewLifecycleService(registry *Registry, storage store.EntityStorage, traces trace.Manager, logger *logger.Logger) LifecycleService {
	return &lifecycleService{
		registry: registry,
		storage:  storage,
		traces:   traces,
		logger:   logger,
	}
}

// Shutdown persists dirty users, then partners, then banks. A failed write
// does not stop the others, and traces are cleared in every case. Writes
// run detached from ctx cancellation so an interrupted run still saves its
// order counters.
func (s *lifecycleService) Shutdown(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	var errs []error

	for _, u := range s.registry.Users() {
		errs = append(errs, s.persist(ctx, u))
	}
	for _, p := range s.registry.Partners() {
		errs = append(errs, s.persist(ctx, p))
	}
	for _, b := range s.registry.Banks() {
		errs = append(errs, s.persist(ctx, b))
	}

	if err := s.traces.Clear(); err != nil {
		s.logger.Err(err).Str("func", "lifecycleService.Shutdown").Msg("error clearing traces")
		errs = append(errs, fmt.Errorf("clear traces: %w", err))
	}

	return errors.Join(errs...)
}

func (s *lifecycleService) persist(ctx context.Context, entity models.Persistable) error {
	if !entity.NeedsSave() {
		return nil
	}
	if err := s.storage.Serialize(ctx, entity); err != nil {
		s.logger.Err(err).Str("func", "lifecycleService.persist").
			Str("key", entity.StorageKey()).
			Msg("error persisting entity")
		return fmt.Errorf("%w: %s: %w", ErrPersistence, entity.StorageKey(), err)
	}
	s.logger.Debug().Str("func", "lifecycleService.persist").Str("key", entity.StorageKey()).Msg("entity persisted")
	return nil
}
