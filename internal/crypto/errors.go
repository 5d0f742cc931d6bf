// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrWrongPassword is returned when the sealed keys cannot be
	// authenticated with the supplied password.
	ErrWrongPassword = errors.New("wrong password or tampered key material")
	// ErrInvalidEnvelope is returned for unreadable or unsupported sealed key
	// material.
	ErrInvalidEnvelope = errors.New("invalid sealed key envelope")
	// ErrIncompleteKeys is returned when sealing a key set with a missing key.
	ErrIncompleteKeys = errors.New("incomplete key set")
)
