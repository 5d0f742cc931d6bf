// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path/filepath"

// Default protocol versions.
const (
	DefaultRevision              = "H004"
	DefaultSignatureVersion      = "A005"
	DefaultAuthenticationVersion = "X002"
	DefaultEncryptionVersion     = "E002"
)

// Configuration is the process-wide client configuration bound into every
// session. It also owns the on-disk layout of per-user directories.
type Configuration struct {
	// RootDir is the client root directory.
	RootDir string
	// Language is the lower-case ISO 639 language of the client.
	Language string
	// Country is the upper-case ISO 3166 country of the client.
	Country string

	Revision              string
	SignatureVersion      string
	AuthenticationVersion string
	EncryptionVersion     string
}

// Locale returns the language_COUNTRY locale string.
func (c Configuration) Locale() string {
	if c.Country == "" {
		return c.Language
	}
	return c.Language + "_" + c.Country
}

// UserDirectory returns the root directory of a user.
func (c Configuration) UserDirectory(userID string) string {
	return filepath.Join(c.RootDir, "users", userID)
}

// TransferTraceDirectory returns the directory transfer traces are written to.
func (c Configuration) TransferTraceDirectory(userID string) string {
	return filepath.Join(c.UserDirectory(userID), "traces")
}

// KeystoreDirectory returns the directory exported key material goes to.
func (c Configuration) KeystoreDirectory(userID string) string {
	return filepath.Join(c.UserDirectory(userID), "keystore")
}

// LettersDirectory returns the directory initialization letters go to.
func (c Configuration) LettersDirectory(userID string) string {
	return filepath.Join(c.UserDirectory(userID), "letters")
}

// SerializationDirectory returns the directory of file-backed entity records.
func (c Configuration) SerializationDirectory() string {
	return filepath.Join(c.RootDir, "serialized")
}

// UserDirectories returns every directory a user needs, root first.
func (c Configuration) UserDirectories(userID string) []string {
	return []string{
		c.UserDirectory(userID),
		c.TransferTraceDirectory(userID),
		c.KeystoreDirectory(userID),
		c.LettersDirectory(userID),
	}
}
