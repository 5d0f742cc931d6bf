// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest carries everything needed to create a subscriber
// together with its bank and partner.
type CreateUserRequest struct {
	BankURL   string
	BankName  string
	HostID    string
	PartnerID string
	UserID    string
	Profile   Profile

	// UseCertificate sets the bank's certificate-usage policy.
	UseCertificate bool
	// SaveCertificates exports the key material into the keystore directory.
	SaveCertificates bool

	Credentials CredentialSupplier
}
