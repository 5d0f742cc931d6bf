// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ebics-client/models"
)

// SendINI implements [KeyExchangeAdapter].
func (h *httpBankAdapter) SendINI(ctx context.Context, s *models.Session) error {
	keys, err := publicKeys(s, models.LetterSignature)
	if err != nil {
		return err
	}

	req := newOrderRequest(h.ids.Generate(), s, models.OrderINI)
	req.PublicKeys = keys

	_, err = h.send(ctx, s, req)
	return err
}

// SendHIA implements [KeyExchangeAdapter].
func (h *httpBankAdapter) SendHIA(ctx context.Context, s *models.Session) error {
	keys, err := publicKeys(s, models.LetterAuthentication, models.LetterEncryption)
	if err != nil {
		return err
	}

	req := newOrderRequest(h.ids.Generate(), s, models.OrderHIA)
	req.PublicKeys = keys

	_, err = h.send(ctx, s, req)
	return err
}

// SendHPB implements [KeyExchangeAdapter]. The response must carry both bank
// key digests.
func (h *httpBankAdapter) SendHPB(ctx context.Context, s *models.Session) (models.BankKeys, error) {
	resp, err := h.send(ctx, s, newOrderRequest(h.ids.Generate(), s, models.OrderHPB))
	if err != nil {
		return models.BankKeys{}, err
	}

	if resp.BankKeys == nil || resp.BankKeys.AuthenticationDigest == "" || resp.BankKeys.EncryptionDigest == "" {
		return models.BankKeys{}, fmt.Errorf("%w: HPB response without bank keys", ErrInvalidResponse)
	}

	return models.BankKeys{
		AuthenticationVersion: resp.BankKeys.AuthenticationVersion,
		AuthenticationDigest:  resp.BankKeys.AuthenticationDigest,
		EncryptionVersion:     resp.BankKeys.EncryptionVersion,
		EncryptionDigest:      resp.BankKeys.EncryptionDigest,
	}, nil
}

// LockAccess implements [KeyExchangeAdapter] with an SPR order.
func (h *httpBankAdapter) LockAccess(ctx context.Context, s *models.Session) error {
	req := newOrderRequest(h.ids.Generate(), s, models.OrderSPR)
	req.OrderAttribute = models.OrderAttributeUpload

	_, err := h.send(ctx, s, req)
	return err
}
