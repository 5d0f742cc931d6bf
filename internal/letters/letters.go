// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package letters renders the initialization letters a subscriber signs and
// sends to the bank alongside the INI and HIA orders.
package letters

import (
	"bytes"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/MKhiriev/go-ebics-client/models"
)

//go:generate mockgen -source=letters.go -destination=../mock/letters_mock.go -package=mock

// Renderer renders one initialization letter of a user.
type Renderer interface {
	Render(user *models.User, kind models.LetterKind) (io.Reader, error)
}

// Digester hashes public keys for the letters.
type Digester interface {
	PublicKeyDigest(pub *rsa.PublicKey) string
}

// ErrLockedKeys is returned when the user's key material is not unlocked.
var ErrLockedKeys = errors.New("user keys are locked")

var titles = map[models.LetterKind]string{
	models.LetterSignature:      "Initialization letter for the electronic signature (INI)",
	models.LetterEncryption:     "Initialization letter for the encryption key (HIA)",
	models.LetterAuthentication: "Initialization letter for the authentication key (HIA)",
}

var letterTemplate = template.Must(template.New("letter").Parse(`{{.Title}}

Date                  : {{.Date}}
Time                  : {{.Time}}
Recipient             : {{.BankName}}
Host ID               : {{.HostID}}
User name             : {{.UserName}}
Organization          : {{.Organization}}
User ID               : {{.UserID}}
Partner ID            : {{.PartnerID}}
Order                 : {{.OrderType}}
Version               : {{.Version}}
{{if .UseCertificate}}
Certificate hash (SHA-256):
{{else}}
Public key
  Exponent ({{.ExponentBits}} bits):
{{.Exponent}}
  Modulus ({{.ModulusBits}} bits):
{{.Modulus}}

Public key hash (SHA-256):
{{end}}{{.Digest}}

I hereby confirm the above key for my electronic banking access.

_________________________          _________________________
Place/date                         Signature
`))

type letterData struct {
	Title          string
	Date           string
	Time           string
	BankName       string
	HostID         string
	UserName       string
	Organization   string
	UserID         string
	PartnerID      string
	OrderType      models.OrderType
	Version        models.LetterKind
	UseCertificate bool
	Exponent       string
	ExponentBits   int
	Modulus        string
	ModulusBits    int
	Digest         string
}

type renderer struct {
	digester Digester
	now      func() time.Time
}

// NewRenderer returns a [Renderer] printing key digests computed by digester.
func NewRenderer(digester Digester) Renderer {
	return &renderer{
		digester: digester,
		now:      time.Now,
	}
}

func (r *renderer) Render(user *models.User, kind models.LetterKind) (io.Reader, error) {
	title, ok := titles[kind]
	if !ok {
		return nil, fmt.Errorf("unknown letter kind %q", kind)
	}

	keys, ok := user.Keys()
	if !ok {
		return nil, ErrLockedKeys
	}
	pub := &keys.Key(kind).PublicKey

	partner := user.Partner()
	bank := partner.Bank()
	now := r.now()

	data := letterData{
		Title:          title,
		Date:           now.Format("02.01.2006"),
		Time:           now.Format("15:04:05"),
		BankName:       bank.Name(),
		HostID:         bank.HostID(),
		UserName:       user.Profile().Name,
		Organization:   user.Profile().Organization,
		UserID:         user.UserID(),
		PartnerID:      partner.PartnerID(),
		OrderType:      kind.OrderType(),
		Version:        kind,
		UseCertificate: bank.UseCertificate(),
		Exponent:       blocks(evenHex(fmt.Sprintf("%X", pub.E))),
		ExponentBits:   bitLen(pub.E),
		Modulus:        blocks(evenHex(fmt.Sprintf("%X", pub.N))),
		ModulusBits:    pub.N.BitLen(),
		Digest:         blocks(r.digester.PublicKeyDigest(pub)),
	}

	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s letter: %w", kind, err)
	}

	return &buf, nil
}

// blocks splits hex into space separated groups of two, 16 groups per line.
func blocks(hex string) string {
	var sb strings.Builder
	for i := 0; i < len(hex); i += 2 {
		end := min(i+2, len(hex))
		switch {
		case i == 0:
		case (i/2)%16 == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(hex[i:end])
	}
	return sb.String()
}

func evenHex(hex string) string {
	if len(hex)%2 == 1 {
		return "0" + hex
	}
	return hex
}

func bitLen(v int) int {
	n := 0
	for ; v > 0; v >>= 1 {
		n++
	}
	return n
}
