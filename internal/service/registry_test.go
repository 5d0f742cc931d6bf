// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateRegistersEntities(t *testing.T) {
	r := NewRegistry()

	bank := r.CreateBank("https://bank.example", "Bank", "H1", false)
	partner := r.CreatePartner(bank, "P1")
	user := r.CreateUser(partner, "U1", models.Profile{}, models.UserKeys{}, nil)

	got, ok := r.Bank("H1")
	require.True(t, ok)
	assert.Same(t, bank, got)

	gotPartner, ok := r.Partner("P1")
	require.True(t, ok)
	assert.Same(t, partner, gotPartner)
	assert.Same(t, bank, gotPartner.Bank())

	gotUser, ok := r.User("U1")
	require.True(t, ok)
	assert.Same(t, user, gotUser)
}

func TestRegistry_CreateOverwritesSameKey(t *testing.T) {
	r := NewRegistry()

	first := r.CreateBank("https://old.example", "Old", "H1", false)
	second := r.CreateBank("https://new.example", "New", "H1", true)

	got, ok := r.Bank("H1")
	require.True(t, ok)
	assert.NotSame(t, first, got)
	assert.Same(t, second, got)
	assert.Len(t, r.Banks(), 1)
}

func TestRegistry_ListingsAreSortedByKey(t *testing.T) {
	r := NewRegistry()
	bank := r.CreateBank("", "", "H2", false)
	r.CreateBank("", "", "H1", false)
	partner := r.CreatePartner(bank, "P2")
	r.CreatePartner(bank, "P1")
	r.CreateUser(partner, "U3", models.Profile{}, models.UserKeys{}, nil)
	r.CreateUser(partner, "U1", models.Profile{}, models.UserKeys{}, nil)
	r.CreateUser(partner, "U2", models.Profile{}, models.UserKeys{}, nil)

	var hosts, partners, users []string
	for _, b := range r.Banks() {
		hosts = append(hosts, b.HostID())
	}
	for _, p := range r.Partners() {
		partners = append(partners, p.PartnerID())
	}
	for _, u := range r.Users() {
		users = append(users, u.UserID())
	}

	assert.Equal(t, []string{"H1", "H2"}, hosts)
	assert.Equal(t, []string{"P1", "P2"}, partners)
	assert.Equal(t, []string{"U1", "U2", "U3"}, users)
}

func TestRegistry_Lookups_Missing(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Bank("nope")
	assert.False(t, ok)
	_, ok = r.Partner("nope")
	assert.False(t, ok)
	_, ok = r.User("nope")
	assert.False(t, ok)
}
