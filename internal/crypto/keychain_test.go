// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ebics-client/models"
)

// fast parameters keep the tests quick
func newTestKeyChain() KeyChainService {
	return NewKeyChainService(WithRSABits(1024), WithArgon2(1, 8*1024, 1))
}

func TestGenerateUserKeys_ThreeDistinctKeys(t *testing.T) {
	svc := newTestKeyChain()

	keys, err := svc.GenerateUserKeys()
	if err != nil {
		t.Fatalf("GenerateUserKeys error: %v", err)
	}
	if !keys.IsComplete() {
		t.Fatalf("expected complete key set")
	}
	if keys.Signature.N.BitLen() != 1024 {
		t.Fatalf("modulus = %d bits, want 1024", keys.Signature.N.BitLen())
	}
	if keys.Signature.Equal(keys.Authentication) || keys.Authentication.Equal(keys.Encryption) {
		t.Fatalf("expected distinct key pairs")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := newTestKeyChain()
	keys, err := svc.GenerateUserKeys()
	if err != nil {
		t.Fatalf("GenerateUserKeys error: %v", err)
	}

	sealed, err := svc.SealKeys("correct horse battery staple", keys)
	if err != nil {
		t.Fatalf("SealKeys error: %v", err)
	}

	opened, err := svc.OpenKeys("correct horse battery staple", sealed)
	if err != nil {
		t.Fatalf("OpenKeys error: %v", err)
	}
	if !opened.Signature.Equal(keys.Signature) ||
		!opened.Authentication.Equal(keys.Authentication) ||
		!opened.Encryption.Equal(keys.Encryption) {
		t.Fatalf("opened keys differ from sealed keys")
	}
}

func TestSealKeys_CarriesKDFParameters(t *testing.T) {
	svc := newTestKeyChain()
	keys, _ := svc.GenerateUserKeys()

	sealed, err := svc.SealKeys("pw", keys)
	if err != nil {
		t.Fatalf("SealKeys error: %v", err)
	}

	var env envelope
	if err = json.Unmarshal(sealed, &env); err != nil {
		t.Fatalf("sealed keys are not an envelope: %v", err)
	}
	if env.KDF != "argon2id" || env.KDFTime != 1 || env.KDFMemoryKB != 8*1024 || env.KDFThreads != 1 {
		t.Fatalf("unexpected kdf parameters: %+v", env)
	}
	if strings.Contains(string(sealed), "PRIVATE KEY") {
		t.Fatalf("sealed keys leak plaintext")
	}
}

func TestOpenKeys_WrongPassword(t *testing.T) {
	svc := newTestKeyChain()
	keys, _ := svc.GenerateUserKeys()
	sealed, _ := svc.SealKeys("right", keys)

	_, err := svc.OpenKeys("wrong", sealed)
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestOpenKeys_Garbage(t *testing.T) {
	svc := newTestKeyChain()

	_, err := svc.OpenKeys("pw", []byte("not json"))
	if !errors.Is(err, ErrInvalidEnvelope) {
		t.Fatalf("expected ErrInvalidEnvelope, got %v", err)
	}

	_, err = svc.OpenKeys("pw", []byte(`{"version":2,"kdf":"argon2id"}`))
	if !errors.Is(err, ErrInvalidEnvelope) {
		t.Fatalf("expected ErrInvalidEnvelope for unknown version, got %v", err)
	}
}

func TestSealKeys_Incomplete(t *testing.T) {
	svc := newTestKeyChain()

	_, err := svc.SealKeys("pw", models.UserKeys{})
	if !errors.Is(err, ErrIncompleteKeys) {
		t.Fatalf("expected ErrIncompleteKeys, got %v", err)
	}
}

func TestPublicKeyDigest_Format(t *testing.T) {
	svc := newTestKeyChain()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa.GenerateKey error: %v", err)
	}

	d1 := svc.PublicKeyDigest(&key.PublicKey)
	d2 := svc.PublicKeyDigest(&key.PublicKey)
	if d1 != d2 {
		t.Fatalf("digest is not deterministic")
	}
	if len(d1) != 64 || strings.ToUpper(d1) != d1 {
		t.Fatalf("digest %q is not 64 upper-case hex chars", d1)
	}
}

func TestPublicKeyDigest_KnownValue(t *testing.T) {
	svc := newTestKeyChain()
	// sha256("10001 ff")
	pub := &rsa.PublicKey{N: big.NewInt(255), E: 65537}

	got := svc.PublicKeyDigest(pub)
	want := "A460B584751BA8CF54F20AE4B568929FB5B7DAAEC999D7EA0936617B82E6266E"
	if got != want {
		t.Fatalf("digest = %s, want %s", got, want)
	}
}
