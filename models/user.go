// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/rsa"
	"sync"
)

// KeyState is the submission state of one of the subscriber key orders
// (INI or HIA).
type KeyState uint8

const (
	// KeyStatePending means the key order was not sent successfully yet.
	KeyStatePending KeyState = iota
	// KeyStateSent means the bank accepted the key order.
	KeyStateSent
)

func (s KeyState) String() string {
	if s == KeyStateSent {
		return "sent"
	}
	return "pending"
}

// Profile holds the descriptive subscriber fields printed on the
// initialization letters.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	Organization string `json:"organization"`
}

// UserKeys is the subscriber key material: one RSA key pair per EBICS key
// version.
type UserKeys struct {
	// Signature is the A005 electronic signature key.
	Signature *rsa.PrivateKey
	// Authentication is the X002 identification and authentication key.
	Authentication *rsa.PrivateKey
	// Encryption is the E002 encryption key.
	Encryption *rsa.PrivateKey
}

// Key returns the private key matching a letter kind.
func (k UserKeys) Key(kind LetterKind) *rsa.PrivateKey {
	switch kind {
	case LetterSignature:
		return k.Signature
	case LetterAuthentication:
		return k.Authentication
	case LetterEncryption:
		return k.Encryption
	}
	return nil
}

// IsComplete reports whether all three key pairs are present.
func (k UserKeys) IsComplete() bool {
	return k.Signature != nil && k.Authentication != nil && k.Encryption != nil
}

// User is an EBICS subscriber acting for a partner.
//
// The INI and HIA states are independent: either order may be sent first and
// neither is ever reset to pending once sent.
type User struct {
	mu sync.Mutex

	partner *Partner
	userID  string
	profile Profile

	ini KeyState
	hia KeyState

	keys       UserKeys
	sealedKeys []byte

	needsSave bool
}

// NewUser returns a new user bound to partner that has not been persisted
// yet. sealedKeys is the password-protected form of keys that goes into the
// user record.
func NewUser(partner *Partner, userID string, profile Profile, keys UserKeys, sealedKeys []byte) *User {
	return &User{
		partner:    partner,
		userID:     userID,
		profile:    profile,
		keys:       keys,
		sealedKeys: sealedKeys,
		needsSave:  true,
	}
}

// UserID returns the user ID.
func (u *User) UserID() string { return u.userID }

// Partner returns the partner the user acts for.
func (u *User) Partner() *Partner { return u.partner }

// Profile returns the descriptive subscriber fields.
func (u *User) Profile() Profile { return u.profile }

// INIState returns the INI submission state.
func (u *User) INIState() KeyState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ini
}

// HIAState returns the HIA submission state.
func (u *User) HIAState() KeyState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hia
}

// IsINISent reports whether the INI order was accepted by the bank.
func (u *User) IsINISent() bool { return u.INIState() == KeyStateSent }

// IsHIASent reports whether the HIA order was accepted by the bank.
func (u *User) IsHIASent() bool { return u.HIAState() == KeyStateSent }

// MarkINISent records a successful INI order.
func (u *User) MarkINISent() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.ini == KeyStateSent {
		return
	}
	u.ini = KeyStateSent
	u.needsSave = true
}

// MarkHIASent records a successful HIA order.
func (u *User) MarkHIASent() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.hia == KeyStateSent {
		return
	}
	u.hia = KeyStateSent
	u.needsSave = true
}

// Keys returns the unlocked key material. ok is false while the user record
// was loaded but its keys have not been unlocked.
func (u *User) Keys() (keys UserKeys, ok bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.keys, u.keys.IsComplete()
}

// UnlockKeys attaches the key material decrypted from the sealed keys.
func (u *User) UnlockKeys(keys UserKeys) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.keys = keys
}

// SealedKeys returns the password-protected key blob stored in the record.
func (u *User) SealedKeys() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]byte(nil), u.sealedKeys...)
}

// StorageKey implements [Persistable].
func (u *User) StorageKey() string { return UserKey(u.userID) }

// RecordKind implements [Persistable].
func (u *User) RecordKind() RecordKind { return RecordUser }

// NeedsSave implements [Persistable].
func (u *User) NeedsSave() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.needsSave
}

// MarkSaved implements [Persistable].
func (u *User) MarkSaved() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.needsSave = false
}
