// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// EBICS return codes the adapter distinguishes.
const (
	ReturnCodeOK             = "000000"
	ReturnCodeNoDownloadData = "090005"
)

var (
	// ErrNoDownloadData is returned by downloads when the bank has no data
	// for the requested window (return code 090005).
	ErrNoDownloadData = errors.New("no download data available")
	// ErrBankRejected is returned for any other non-OK return code.
	ErrBankRejected = errors.New("order rejected by bank")
	// ErrKeysLocked is returned when the session user's keys are not
	// unlocked.
	ErrKeysLocked = errors.New("subscriber keys are locked")
	// ErrInvalidResponse is returned when the bank response cannot be
	// decoded.
	ErrInvalidResponse = errors.New("invalid bank response")
)

// HTTP status errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
