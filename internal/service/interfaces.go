// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ebics-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService creates, loads and documents subscribers.
type UserService interface {
	// CreateUser registers a bank, a partner and a user, generates and seals
	// the user's keys, creates the user directories, persists the three
	// entities and writes the initialization letters.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)

	// LoadUser reads the bank, partner and user records and unlocks the
	// user's keys. Nothing is registered unless every step succeeds.
	LoadUser(ctx context.Context, hostID, partnerID, userID string, credentials models.CredentialSupplier) (*models.User, error)

	// CreateLetters renders the A005, E002 and X002 letters into the
	// user's letters directory.
	CreateLetters(user *models.User, useCertificate bool) error
}

// KeyManagementService runs the administrative key orders.
type KeyManagementService interface {
	// SendINI sends the signature key once. Repeated calls are no-ops.
	SendINI(ctx context.Context, user *models.User, product models.Product) error
	// SendHIA sends the authentication and encryption keys once.
	SendHIA(ctx context.Context, user *models.User, product models.Product) error
	// SendHPB downloads and stores the bank's public keys.
	SendHPB(ctx context.Context, user *models.User, product models.Product) error
	// RevokeSubscriber locks the subscriber at the bank (SPR).
	RevokeSubscriber(ctx context.Context, user *models.User, product models.Product) error
}

// FileTransferService uploads and downloads order data.
type FileTransferService interface {
	// SendFile uploads content under a fresh order id of the user's partner.
	SendFile(ctx context.Context, content []byte, user *models.User, product models.Product, orderType models.OrderType) error

	// FetchFile downloads into path. The file exists only when the result is
	// delivered.
	FetchFile(ctx context.Context, path string, user *models.User, product models.Product,
		orderType models.OrderType, isTest bool, start, end *time.Time) (models.FetchResult, error)

	// FetchFileContent downloads into memory.
	FetchFileContent(ctx context.Context, user *models.User, product models.Product,
		orderType models.OrderType, isTest bool, start, end *time.Time) (models.FetchResult, error)
}

// OrderSequencer advances partner order counters.
type OrderSequencer interface {
	// Skip consumes count order ids of partner.
	Skip(partner *models.Partner, count int) error
}

// LifecycleService persists dirty entities and clears traces.
type LifecycleService interface {
	Shutdown(ctx context.Context) error
}
