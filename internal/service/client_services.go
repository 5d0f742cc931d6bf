// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ebics-client/internal/adapter"
	"github.com/MKhiriev/go-ebics-client/internal/crypto"
	"github.com/MKhiriev/go-ebics-client/internal/letters"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/store"
	"github.com/MKhiriev/go-ebics-client/internal/trace"
	"github.com/MKhiriev/go-ebics-client/models"
)

type ClientServices struct {
	Registry  *Registry
	Users     UserService
	Keys      KeyManagementService
	Transfers FileTransferService
	Sequencer OrderSequencer
	Lifecycle LifecycleService
}

func NewClientServices(
	cfg models.Configuration,
	storages *store.ClientStorages,
	bank adapter.BankAdapter,
	keyChain crypto.KeyChainService,
	renderer letters.Renderer,
	traces trace.Manager,
	logger *logger.Logger,
) *ClientServices {
	registry := NewRegistry()

	return &ClientServices{
		Registry:  registry,
		Users:     NewUserService(registry, storages, keyChain, renderer, cfg, logger),
		Keys:      NewKeyManagementService(bank, traces, cfg, logger),
		Transfers: NewFileTransferService(bank, traces, cfg, logger),
		Sequencer: NewOrderSequencer(logger),
		Lifecycle: NewLifecycleService(registry, storages.EntityStorage, traces, logger),
	}
}
