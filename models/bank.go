// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

// BankKeys holds the digests of the bank's public keys as returned by a
// successful HPB order.
type BankKeys struct {
	// AuthenticationVersion is the bank authentication key version (e.g. X002).
	AuthenticationVersion string `json:"authentication_version"`
	// AuthenticationDigest is the hex SHA-256 digest of the authentication key.
	AuthenticationDigest string `json:"authentication_digest"`
	// EncryptionVersion is the bank encryption key version (e.g. E002).
	EncryptionVersion string `json:"encryption_version"`
	// EncryptionDigest is the hex SHA-256 digest of the encryption key.
	EncryptionDigest string `json:"encryption_digest"`
}

// IsZero reports whether no bank key was ever retrieved.
func (k BankKeys) IsZero() bool {
	return k == BankKeys{}
}

// Bank is the EBICS host a partner belongs to. It is identified by its host
// ID and shared by every partner and user referencing that host.
type Bank struct {
	mu sync.Mutex

	hostID         string
	url            string
	name           string
	useCertificate bool
	keys           BankKeys

	needsSave bool
}

// NewBank returns a new bank that has not been persisted yet.
func NewBank(url, name, hostID string, useCertificate bool) *Bank {
	return &Bank{
		hostID:         hostID,
		url:            url,
		name:           name,
		useCertificate: useCertificate,
		needsSave:      true,
	}
}

// HostID returns the bank host ID.
func (b *Bank) HostID() string { return b.hostID }

// URL returns the bank EBICS endpoint.
func (b *Bank) URL() string { return b.url }

// Name returns the human-readable bank name.
func (b *Bank) Name() string { return b.name }

// UseCertificate reports whether the bank works with X.509 certificates.
func (b *Bank) UseCertificate() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.useCertificate
}

// SetUseCertificate changes the certificate-usage policy. The bank is marked
// dirty only when the policy actually changes.
func (b *Bank) SetUseCertificate(use bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.useCertificate == use {
		return
	}
	b.useCertificate = use
	b.needsSave = true
}

// Keys returns the bank key digests retrieved by the last HPB order.
func (b *Bank) Keys() BankKeys {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.keys
}

// SetKeys stores the bank key digests. The bank is marked dirty only when
// the digests change.
func (b *Bank) SetKeys(keys BankKeys) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.keys == keys {
		return
	}
	b.keys = keys
	b.needsSave = true
}

// StorageKey implements [Persistable].
func (b *Bank) StorageKey() string { return BankKey(b.hostID) }

// RecordKind implements [Persistable].
func (b *Bank) RecordKind() RecordKind { return RecordBank }

// NeedsSave implements [Persistable].
func (b *Bank) NeedsSave() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.needsSave
}

// MarkSaved implements [Persistable].
func (b *Bank) MarkSaved() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.needsSave = false
}
