// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product describes the client software announced to the bank in every
// request. It is immutable and never persisted.
type Product struct {
	Name            string `json:"name"`
	Language        string `json:"language"`
	InstitutionCode string `json:"institution_code,omitempty"`
}
