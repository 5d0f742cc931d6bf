// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestUser() *User {
	bank := NewBank("https://bank.example", "Bank", "HOST", false)
	partner := NewPartner(bank, "PARTNER")
	return NewUser(partner, "USER", Profile{Name: "Jane Doe"}, UserKeys{}, []byte("sealed"))
}

func TestUser_KeyStatesAreIndependent(t *testing.T) {
	u := newTestUser()
	assert.Equal(t, KeyStatePending, u.INIState())
	assert.Equal(t, KeyStatePending, u.HIAState())

	u.MarkHIASent()
	assert.False(t, u.IsINISent())
	assert.True(t, u.IsHIASent())

	u.MarkINISent()
	assert.True(t, u.IsINISent())
	assert.True(t, u.IsHIASent())
}

func TestUser_MarkINISent_MarksDirtyOnce(t *testing.T) {
	u := newTestUser()
	u.MarkSaved()

	u.MarkINISent()
	assert.True(t, u.NeedsSave())

	u.MarkSaved()
	u.MarkINISent()
	assert.False(t, u.NeedsSave(), "already sent INI must not mark the user dirty again")
	assert.Equal(t, "sent", u.INIState().String())
}

func TestUser_KeysLockedUntilUnlocked(t *testing.T) {
	u := newTestUser()

	_, ok := u.Keys()
	assert.False(t, ok)
	assert.Equal(t, []byte("sealed"), u.SealedKeys())
	assert.Equal(t, "user-USER", u.StorageKey())
}
