// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialSupplier hands out the password protecting a user's key
// material. It is asked lazily, only when keys are sealed or unlocked.
type CredentialSupplier interface {
	Password() (string, error)
}

// PasswordFunc adapts a plain function to [CredentialSupplier].
type PasswordFunc func() (string, error)

// Password implements [CredentialSupplier].
func (f PasswordFunc) Password() (string, error) { return f() }

// StaticPassword returns a [CredentialSupplier] that always yields password.
func StaticPassword(password string) CredentialSupplier {
	return PasswordFunc(func() (string, error) { return password, nil })
}
