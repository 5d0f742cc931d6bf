// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// bank's EBICS endpoint.
//
// The service layer only sees [KeyExchangeAdapter] and [TransferAdapter]; the
// package ships an HTTP implementation ([NewHTTPBankAdapter]) built on resty
// that exchanges JSON order envelopes with the bank.
//
// Bank return codes are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is]; in particular [ErrNoDownloadData] marks the
// expected "no data for this window" outcome of a download.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-ebics-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bank_adapter_mock.go -package=mock

// KeyExchangeAdapter performs the administrative key orders.
type KeyExchangeAdapter interface {
	// SendINI sends the subscriber's signature public key.
	SendINI(ctx context.Context, s *models.Session) error
	// SendHIA sends the subscriber's authentication and encryption public
	// keys.
	SendHIA(ctx context.Context, s *models.Session) error
	// SendHPB downloads the bank's public keys.
	SendHPB(ctx context.Context, s *models.Session) (models.BankKeys, error)
	// LockAccess revokes the subscriber (SPR).
	LockAccess(ctx context.Context, s *models.Session) error
}

// TransferAdapter performs file uploads and downloads.
type TransferAdapter interface {
	// Upload sends order data to the bank.
	Upload(ctx context.Context, s *models.Session, req UploadRequest) error
	// Download writes the order data for req into dst. It returns
	// [ErrNoDownloadData] when the bank has nothing for the window.
	Download(ctx context.Context, s *models.Session, req DownloadRequest, dst io.Writer) error
}

// BankAdapter is the complete bank transport.
type BankAdapter interface {
	KeyExchangeAdapter
	TransferAdapter
}

// UploadRequest describes one upload order.
type UploadRequest struct {
	OrderType models.OrderType
	Attribute models.OrderAttribute
	OrderID   string
	Content   []byte
}

// DownloadRequest describes one download order.
type DownloadRequest struct {
	OrderType models.OrderType
	Attribute models.OrderAttribute
	Window    models.DateWindow
}
