// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-ebics-client/models"
)

// Registry holds the banks, partners and users known to one run.
//
// Registering an entity under a key that is already taken replaces the
// previous entry. Listings are sorted by key so that shutdown walks the
// entities in a stable order.
type Registry struct {
	mu       sync.RWMutex
	banks    map[string]*models.Bank
	partners map[string]*models.Partner
	users    map[string]*models.User
}

func NewRegistry() *Registry {
	return &Registry{
		banks:    make(map[string]*models.Bank),
		partners: make(map[string]*models.Partner),
		users:    make(map[string]*models.User),
	}
}

// CreateBank constructs and registers a bank.
func (r *Registry) CreateBank(url, name, hostID string, useCertificate bool) *models.Bank {
	bank := models.NewBank(url, name, hostID, useCertificate)
	r.RegisterBank(bank)
	return bank
}

// CreatePartner constructs and registers a partner of bank.
func (r *Registry) CreatePartner(bank *models.Bank, partnerID string) *models.Partner {
	partner := models.NewPartner(bank, partnerID)
	r.RegisterPartner(partner)
	return partner
}

// CreateUser constructs and registers a user of partner.
func (r *Registry) CreateUser(partner *models.Partner, userID string, profile models.Profile,
	keys models.UserKeys, sealedKeys []byte) *models.User {
	user := models.NewUser(partner, userID, profile, keys, sealedKeys)
	r.RegisterUser(user)
	return user
}

func (r *Registry) RegisterBank(bank *models.Bank) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banks[bank.HostID()] = bank
}

func (r *Registry) RegisterPartner(partner *models.Partner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.partners[partner.PartnerID()] = partner
}

func (r *Registry) RegisterUser(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID()] = user
}

func (r *Registry) Bank(hostID string) (*models.Bank, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bank, ok := r.banks[hostID]
	return bank, ok
}

func (r *Registry) Partner(partnerID string) (*models.Partner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	partner, ok := r.partners[partnerID]
	return partner, ok
}

func (r *Registry) User(userID string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	return user, ok
}

func (r *Registry) Banks() []*models.Bank {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedValues(r.banks)
}

func (r *Registry) Partners() []*models.Partner {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedValues(r.partners)
}

func (r *Registry) Users() []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedValues(r.users)
}

func sortedValues[T any](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
