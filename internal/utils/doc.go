// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the client: identifier
// generation and the preconfigured HTTP client used by the bank adapter.
package utils
