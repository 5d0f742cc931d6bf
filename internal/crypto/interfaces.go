// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rsa"

	"github.com/MKhiriev/go-ebics-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns the subscriber key material on the client side. It
// knows nothing about the network, the bank or the record store.
//
// Lifecycle:
//
//	keys    = GenerateUserKeys()              on user creation
//	sealed  = SealKeys(password, keys)        persisted with the user record
//	keys    = OpenKeys(password, sealed)      on every later load
//	digest  = PublicKeyDigest(&key.PublicKey) printed on the letters
type KeyChainService interface {
	// GenerateUserKeys generates the A005, X002 and E002 RSA key pairs.
	GenerateUserKeys() (models.UserKeys, error)

	// SealKeys encrypts the private keys with a key derived from password
	// (Argon2id) using XChaCha20-Poly1305.
	SealKeys(password string, keys models.UserKeys) ([]byte, error)

	// OpenKeys reverses SealKeys. A wrong password yields ErrWrongPassword.
	OpenKeys(password string, sealed []byte) (models.UserKeys, error)

	// PublicKeyDigest returns the SHA-256 hash of a public key in the
	// upper-case hex form printed on the initialization letters.
	PublicKeyDigest(pub *rsa.PublicKey) string
}
