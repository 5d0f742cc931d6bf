// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Configuration errors. Both abort the client before any network activity.
var (
	// ErrMissingSetting indicates a required setting that is not set or
	// empty. The wrapping error names the setting.
	ErrMissingSetting = errors.New("setting not set or empty")
	// ErrInvalidSetting indicates a setting whose value cannot be used
	// (for example, an unparsable bank URL or an unknown storage backend).
	ErrInvalidSetting = errors.New("invalid setting")
)
