// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"crypto/rsa"
	"fmt"

	"github.com/MKhiriev/go-ebics-client/models"
)

const dateLayout = "2006-01-02"

// orderRequest is the JSON envelope posted to the bank for every order.
type orderRequest struct {
	RequestID      string                `json:"request_id"`
	Revision       string                `json:"revision"`
	HostID         string                `json:"host_id"`
	PartnerID      string                `json:"partner_id"`
	UserID         string                `json:"user_id"`
	OrderType      models.OrderType      `json:"order_type"`
	OrderID        string                `json:"order_id,omitempty"`
	OrderAttribute models.OrderAttribute `json:"order_attribute,omitempty"`
	Product        models.Product        `json:"product"`
	Locale         string                `json:"locale,omitempty"`
	Params         []models.SessionParam `json:"params,omitempty"`
	Start          string                `json:"start,omitempty"`
	End            string                `json:"end,omitempty"`
	PublicKeys     []publicKey           `json:"public_keys,omitempty"`
	Payload        []byte                `json:"payload,omitempty"`
}

type publicKey struct {
	Version  string `json:"version"`
	Exponent string `json:"exponent"`
	Modulus  string `json:"modulus"`
}

// orderResponse is the JSON envelope returned by the bank.
type orderResponse struct {
	ReturnCode string        `json:"return_code"`
	ReportText string        `json:"report_text,omitempty"`
	Payload    []byte        `json:"payload,omitempty"`
	BankKeys   *bankKeysWire `json:"bank_keys,omitempty"`
}

type bankKeysWire struct {
	AuthenticationVersion string `json:"authentication_version"`
	AuthenticationDigest  string `json:"authentication_digest"`
	EncryptionVersion     string `json:"encryption_version"`
	EncryptionDigest      string `json:"encryption_digest"`
}

func newOrderRequest(requestID string, s *models.Session, orderType models.OrderType) orderRequest {
	partner := s.User.Partner()
	return orderRequest{
		RequestID: requestID,
		Revision:  s.Config.Revision,
		HostID:    partner.Bank().HostID(),
		PartnerID: partner.PartnerID(),
		UserID:    s.User.UserID(),
		OrderType: orderType,
		Product:   s.Product,
		Locale:    s.Config.Locale(),
		Params:    s.Params(),
	}
}

func encodePublicKey(version string, pub *rsa.PublicKey) publicKey {
	return publicKey{
		Version:  version,
		Exponent: fmt.Sprintf("%X", pub.E),
		Modulus:  fmt.Sprintf("%X", pub.N),
	}
}

// publicKeys returns the public keys of the session user for the given
// letter kinds.
func publicKeys(s *models.Session, kinds ...models.LetterKind) ([]publicKey, error) {
	keys, ok := s.User.Keys()
	if !ok {
		return nil, ErrKeysLocked
	}

	out := make([]publicKey, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, encodePublicKey(string(kind), &keys.Key(kind).PublicKey))
	}
	return out, nil
}
