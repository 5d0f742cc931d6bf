// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"io"
)

const recordVersion = 1

// RecordKind identifies the entity a persisted record belongs to.
type RecordKind string

const (
	RecordBank    RecordKind = "bank"
	RecordPartner RecordKind = "partner"
	RecordUser    RecordKind = "user"
)

// Persistable is an entity that can be written by the persistence service.
type Persistable interface {
	// StorageKey returns the stable record key of the entity.
	StorageKey() string
	// RecordKind returns the kind of record the entity is stored as.
	RecordKind() RecordKind
	// EncodeRecord serializes the entity.
	EncodeRecord() ([]byte, error)
	// NeedsSave reports whether the entity diverged from its record.
	NeedsSave() bool
	// MarkSaved clears the dirty flag after a successful write.
	MarkSaved()
}

// BankKey returns the record key of a bank.
func BankKey(hostID string) string { return hostID }

// PartnerKey returns the record key of a partner.
func PartnerKey(partnerID string) string { return "partner-" + partnerID }

// UserKey returns the record key of a user.
func UserKey(userID string) string { return "user-" + userID }

type bankRecord struct {
	Version        int      `json:"version"`
	HostID         string   `json:"host_id"`
	URL            string   `json:"url"`
	Name           string   `json:"name"`
	UseCertificate bool     `json:"use_certificate"`
	Keys           BankKeys `json:"keys"`
}

type partnerRecord struct {
	Version      int    `json:"version"`
	PartnerID    string `json:"partner_id"`
	HostID       string `json:"host_id"`
	OrderCounter uint64 `json:"order_counter"`
}

type userRecord struct {
	Version    int     `json:"version"`
	UserID     string  `json:"user_id"`
	PartnerID  string  `json:"partner_id"`
	Profile    Profile `json:"profile"`
	INI        bool    `json:"ini_sent"`
	HIA        bool    `json:"hia_sent"`
	SealedKeys []byte  `json:"sealed_keys"`
}

// EncodeRecord implements [Persistable].
func (b *Bank) EncodeRecord() ([]byte, error) {
	b.mu.Lock()
	rec := bankRecord{
		Version:        recordVersion,
		HostID:         b.hostID,
		URL:            b.url,
		Name:           b.name,
		UseCertificate: b.useCertificate,
		Keys:           b.keys,
	}
	b.mu.Unlock()

	return json.Marshal(rec)
}

// EncodeRecord implements [Persistable].
func (p *Partner) EncodeRecord() ([]byte, error) {
	p.mu.Lock()
	rec := partnerRecord{
		Version:      recordVersion,
		PartnerID:    p.partnerID,
		HostID:       p.bank.HostID(),
		OrderCounter: p.orderCounter,
	}
	p.mu.Unlock()

	return json.Marshal(rec)
}

// EncodeRecord implements [Persistable].
func (u *User) EncodeRecord() ([]byte, error) {
	u.mu.Lock()
	rec := userRecord{
		Version:    recordVersion,
		UserID:     u.userID,
		PartnerID:  u.partner.PartnerID(),
		Profile:    u.profile,
		INI:        u.ini == KeyStateSent,
		HIA:        u.hia == KeyStateSent,
		SealedKeys: u.sealedKeys,
	}
	u.mu.Unlock()

	return json.Marshal(rec)
}

// ReadBank rebuilds a bank from its record.
func ReadBank(r io.Reader) (*Bank, error) {
	var rec bankRecord
	if err := decodeRecord(r, &rec); err != nil {
		return nil, err
	}
	if rec.HostID == "" {
		return nil, fmt.Errorf("%w: bank record without host id", ErrCorruptRecord)
	}

	return &Bank{
		hostID:         rec.HostID,
		url:            rec.URL,
		name:           rec.Name,
		useCertificate: rec.UseCertificate,
		keys:           rec.Keys,
	}, nil
}

// ReadPartner rebuilds a partner from its record and binds it to bank.
func ReadPartner(bank *Bank, r io.Reader) (*Partner, error) {
	var rec partnerRecord
	if err := decodeRecord(r, &rec); err != nil {
		return nil, err
	}
	if rec.PartnerID == "" {
		return nil, fmt.Errorf("%w: partner record without partner id", ErrCorruptRecord)
	}
	if rec.HostID != bank.HostID() {
		return nil, fmt.Errorf("%w: partner %s belongs to host %s, not %s",
			ErrRecordMismatch, rec.PartnerID, rec.HostID, bank.HostID())
	}

	return &Partner{
		bank:         bank,
		partnerID:    rec.PartnerID,
		orderCounter: rec.OrderCounter,
	}, nil
}

// ReadUser rebuilds a user from its record and binds it to partner. The key
// material stays sealed until [User.UnlockKeys] is called.
func ReadUser(partner *Partner, r io.Reader) (*User, error) {
	var rec userRecord
	if err := decodeRecord(r, &rec); err != nil {
		return nil, err
	}
	if rec.UserID == "" {
		return nil, fmt.Errorf("%w: user record without user id", ErrCorruptRecord)
	}
	if rec.PartnerID != partner.PartnerID() {
		return nil, fmt.Errorf("%w: user %s belongs to partner %s, not %s",
			ErrRecordMismatch, rec.UserID, rec.PartnerID, partner.PartnerID())
	}

	u := &User{
		partner:    partner,
		userID:     rec.UserID,
		profile:    rec.Profile,
		sealedKeys: rec.SealedKeys,
	}
	if rec.INI {
		u.ini = KeyStateSent
	}
	if rec.HIA {
		u.hia = KeyStateSent
	}
	return u, nil
}

func decodeRecord(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return nil
}
