// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage marks invalid arguments supplied by the caller.
	ErrUsage = errors.New("invalid usage")

	// ErrKeyExchange marks a failed INI, HIA, HPB or SPR order.
	ErrKeyExchange = errors.New("key exchange failed")
	// ErrTransfer marks a failed upload or download.
	ErrTransfer = errors.New("transfer failed")

	// ErrPersistence marks a failed write of entities, keys or letters.
	ErrPersistence = errors.New("persistence failed")
	// ErrLoad marks a failed user load. It is a persistence error.
	ErrLoad = fmt.Errorf("%w: load user", ErrPersistence)

	ErrNoCredentials = errors.New("no credential supplier given")
)
