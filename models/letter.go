// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LetterKind names an initialization letter by the key version it certifies.
type LetterKind string

const (
	// LetterSignature accompanies the INI order (A005 signature key).
	LetterSignature LetterKind = "A005"
	// LetterEncryption accompanies the HIA order (E002 encryption key).
	LetterEncryption LetterKind = "E002"
	// LetterAuthentication accompanies the HIA order (X002 authentication key).
	LetterAuthentication LetterKind = "X002"
)

// LetterKinds returns the three letters in the order they are rendered.
func LetterKinds() []LetterKind {
	return []LetterKind{LetterSignature, LetterEncryption, LetterAuthentication}
}

// FileName returns the name of the file the letter is written to.
func (k LetterKind) FileName() string {
	return "letter-" + string(k) + ".txt"
}

// OrderType returns the key order the letter belongs to.
func (k LetterKind) OrderType() OrderType {
	if k == LetterSignature {
		return OrderINI
	}
	return OrderHIA
}
