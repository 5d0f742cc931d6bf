// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
)

type orderSequencer struct {
	logger *logger.Logger
}

func NewOrderSequencer(logger *logger.Logger) OrderSequencer {
	return &orderSequencer{logger: logger}
}

func (s *orderSequencer) Skip(partner *models.Partner, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: cannot skip %d orders", ErrUsage, count)
	}

	var last string
	for range count {
		last = partner.NextOrderID()
	}

	s.logger.Info().Str("func", "orderSequencer.Skip").
		Str("host_id", partner.Bank().HostID()).
		Str("partner_id", partner.PartnerID()).
		Int("count", count).
		Str("last_order_id", last).
		Msg("order ids skipped")
	return nil
}
