// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrCorruptRecord is returned when a persisted record cannot be decoded
	// or misses a mandatory field.
	ErrCorruptRecord = errors.New("corrupt entity record")

	// ErrRecordMismatch is returned when a record references a different
	// owner than the one it is being bound to (e.g. a partner record stored
	// for another host).
	ErrRecordMismatch = errors.New("entity record does not match its owner")
)
