// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

const (
	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// order ids always start with a letter: A000 .. ZZZZ
	orderIDOffset = 10 * 36 * 36 * 36
	orderIDSpace  = 26 * 36 * 36 * 36
)

// Partner is the customer an EBICS user acts for. It owns the order-id
// counter shared by every user of the partner.
type Partner struct {
	mu sync.Mutex

	bank         *Bank
	partnerID    string
	orderCounter uint64

	needsSave bool
}

// NewPartner returns a new partner bound to bank that has not been persisted
// yet.
func NewPartner(bank *Bank, partnerID string) *Partner {
	return &Partner{
		bank:      bank,
		partnerID: partnerID,
		needsSave: true,
	}
}

// PartnerID returns the partner ID.
func (p *Partner) PartnerID() string { return p.partnerID }

// Bank returns the bank the partner belongs to.
func (p *Partner) Bank() *Bank { return p.bank }

// OrderCounter returns the current value of the order-id counter.
func (p *Partner) OrderCounter() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.orderCounter
}

// NextOrderID advances the order-id counter by one and returns the matching
// four character order id. The counter never decreases; the formatted id
// cycles through A000..ZZZZ.
func (p *Partner) NextOrderID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orderCounter++
	p.needsSave = true
	return FormatOrderID(p.orderCounter)
}

// FormatOrderID renders an order-id counter value as a four character
// alphanumeric order id starting with a letter.
func FormatOrderID(counter uint64) string {
	v := orderIDOffset + counter%orderIDSpace
	var id [4]byte
	for i := len(id) - 1; i >= 0; i-- {
		id[i] = orderIDAlphabet[v%36]
		v /= 36
	}
	return string(id[:])
}

// StorageKey implements [Persistable].
func (p *Partner) StorageKey() string { return PartnerKey(p.partnerID) }

// RecordKind implements [Persistable].
func (p *Partner) RecordKind() RecordKind { return RecordPartner }

// NeedsSave implements [Persistable].
func (p *Partner) NeedsSave() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.needsSave
}

// MarkSaved implements [Persistable].
func (p *Partner) MarkSaved() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.needsSave = false
}
