// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ebics-client/models"
	"go.uber.org/mock/gomock"
)

const (
	testHostID    = "EBIXHOST"
	testPartnerID = "PARTNER1"
	testUserID    = "USER1"
	testPassword  = "secret"
)

var testProduct = models.Product{Name: "go-ebics-client", Language: "fr"}

// newTestUser builds a bank, partner and user chain that is already in sync
// with storage.
func newTestUser() *models.User {
	bank := models.NewBank("https://bank.example/ebics", "Test Bank", testHostID, false)
	partner := models.NewPartner(bank, testPartnerID)
	user := models.NewUser(partner, testUserID, models.Profile{Name: "Jane Doe"}, models.UserKeys{}, []byte("sealed"))
	bank.MarkSaved()
	partner.MarkSaved()
	user.MarkSaved()
	return user
}

// storageKey matches a models.Persistable by its record key.
type storageKey string

func (k storageKey) Matches(x any) bool {
	p, ok := x.(models.Persistable)
	return ok && p.StorageKey() == string(k)
}

func (k storageKey) String() string { return fmt.Sprintf("has storage key %q", string(k)) }

var _ gomock.Matcher = storageKey("")

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// testKeys returns a complete key set shared by the tests of the package.
var testKeys = sync.OnceValue(func() models.UserKeys {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		panic(err)
	}
	return models.UserKeys{Signature: key, Authentication: key, Encryption: key}
})
