// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-ebics-client/models"
)

// DefaultRSABits is the modulus size of generated subscriber keys.
const DefaultRSABits = 2048

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	rsaBits int

	// Argon2id tuning parameters used for new envelopes.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// Option tunes a [KeyChainService].
type Option func(*keyChainService)

// WithRSABits overrides the modulus size of generated keys.
func WithRSABits(bits int) Option {
	return func(k *keyChainService) { k.rsaBits = bits }
}

// WithArgon2 overrides the Argon2id cost parameters (memory in KiB).
func WithArgon2(time, memoryKB uint32, threads uint8) Option {
	return func(k *keyChainService) {
		k.argonTime = time
		k.argonMemory = memoryKB
		k.argonThreads = threads
	}
}

// NewKeyChainService constructs a [KeyChainService] generating 2048-bit keys
// and sealing them with the Argon2id parameters recommended by OWASP:
//   - time cost:   2 iterations
//   - memory cost: 64 MiB
//   - parallelism: 1 thread
func NewKeyChainService(opts ...Option) KeyChainService {
	k := &keyChainService{
		rsaBits:      DefaultRSABits,
		argonTime:    2,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 1,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *keyChainService) GenerateUserKeys() (models.UserKeys, error) {
	var keys models.UserKeys
	for _, dst := range []**rsa.PrivateKey{&keys.Signature, &keys.Authentication, &keys.Encryption} {
		key, err := rsa.GenerateKey(rand.Reader, k.rsaBits)
		if err != nil {
			return models.UserKeys{}, fmt.Errorf("generate rsa key: %w", err)
		}
		*dst = key
	}
	return keys, nil
}

// sealedKeys is the plaintext inside the envelope: PKCS#8 DER per version.
type sealedKeys struct {
	Signature      []byte `json:"a005"`
	Authentication []byte `json:"x002"`
	Encryption     []byte `json:"e002"`
}

func (k *keyChainService) SealKeys(password string, keys models.UserKeys) ([]byte, error) {
	if !keys.IsComplete() {
		return nil, ErrIncompleteKeys
	}

	var plain sealedKeys
	pairs := []struct {
		dst *[]byte
		key *rsa.PrivateKey
	}{
		{&plain.Signature, keys.Signature},
		{&plain.Authentication, keys.Authentication},
		{&plain.Encryption, keys.Encryption},
	}
	for _, p := range pairs {
		der, err := x509.MarshalPKCS8PrivateKey(p.key)
		if err != nil {
			return nil, fmt.Errorf("marshal private key: %w", err)
		}
		*p.dst = der
	}

	raw, err := json.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("marshal key set: %w", err)
	}
	defer zeroBytes(raw)

	return k.seal(password, raw)
}

func (k *keyChainService) OpenKeys(password string, sealed []byte) (models.UserKeys, error) {
	raw, err := k.open(password, sealed)
	if err != nil {
		return models.UserKeys{}, err
	}
	defer zeroBytes(raw)

	var plain sealedKeys
	if err = json.Unmarshal(raw, &plain); err != nil {
		return models.UserKeys{}, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	var keys models.UserKeys
	pairs := []struct {
		dst **rsa.PrivateKey
		der []byte
	}{
		{&keys.Signature, plain.Signature},
		{&keys.Authentication, plain.Authentication},
		{&keys.Encryption, plain.Encryption},
	}
	for _, p := range pairs {
		parsed, err := x509.ParsePKCS8PrivateKey(p.der)
		if err != nil {
			return models.UserKeys{}, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return models.UserKeys{}, fmt.Errorf("%w: not an rsa key", ErrInvalidEnvelope)
		}
		*p.dst = rsaKey
	}

	return keys, nil
}

// PublicKeyDigest hashes "<exponent hex> <modulus hex>" with leading zeros
// trimmed, the EBICS public key hash input.
func (k *keyChainService) PublicKeyDigest(pub *rsa.PublicKey) string {
	exponent := strings.TrimLeft(hex.EncodeToString(big.NewInt(int64(pub.E)).Bytes()), "0")
	modulus := strings.TrimLeft(hex.EncodeToString(pub.N.Bytes()), "0")

	sum := sha256.Sum256([]byte(exponent + " " + modulus))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
