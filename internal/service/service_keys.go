// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ebics-client/internal/adapter"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/trace"
	"github.com/MKhiriev/go-ebics-client/models"
)

type keyManagementService struct {
	adapter adapter.KeyExchangeAdapter
	traces  trace.Manager
	cfg     models.Configuration

	logger *logger.Logger
}

func NewKeyManagementService(
	keyExchange adapter.KeyExchangeAdapter,
	traces trace.Manager,
	cfg models.Configuration,
	logger *logger.Logger,
) KeyManagementService {
	return &keyManagementService{
		adapter: keyExchange,
		traces:  traces,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *keyManagementService) SendINI(ctx context.Context, user *models.User, product models.Product) error {
	log := userLogger(s.logger, user, models.OrderINI)

	if user.IsINISent() {
		log.Info().Str("func", "keyManagementService.SendINI").Msg("INI already sent, skipping")
		return nil
	}

	if err := s.adapter.SendINI(ctx, s.newSession(user, product)); err != nil {
		log.Err(err).Str("func", "keyManagementService.SendINI").Msg("error sending INI")
		return fmt.Errorf("%w: INI: %w", ErrKeyExchange, err)
	}
	user.MarkINISent()

	log.Info().Str("func", "keyManagementService.SendINI").Msg("INI sent")
	return nil
}

func (s *keyManagementService) SendHIA(ctx context.Context, user *models.User, product models.Product) error {
	log := userLogger(s.logger, user, models.OrderHIA)

	if user.IsHIASent() {
		log.Info().Str("func", "keyManagementService.SendHIA").Msg("HIA already sent, skipping")
		return nil
	}

	if err := s.adapter.SendHIA(ctx, s.newSession(user, product)); err != nil {
		log.Err(err).Str("func", "keyManagementService.SendHIA").Msg("error sending HIA")
		return fmt.Errorf("%w: HIA: %w", ErrKeyExchange, err)
	}
	user.MarkHIASent()

	log.Info().Str("func", "keyManagementService.SendHIA").Msg("HIA sent")
	return nil
}

func (s *keyManagementService) SendHPB(ctx context.Context, user *models.User, product models.Product) error {
	log := userLogger(s.logger, user, models.OrderHPB)

	keys, err := s.adapter.SendHPB(ctx, s.newSession(user, product))
	if err != nil {
		log.Err(err).Str("func", "keyManagementService.SendHPB").Msg("error sending HPB")
		return fmt.Errorf("%w: HPB: %w", ErrKeyExchange, err)
	}
	user.Partner().Bank().SetKeys(keys)

	log.Info().Str("func", "keyManagementService.SendHPB").Msg("bank keys received")
	return nil
}

func (s *keyManagementService) RevokeSubscriber(ctx context.Context, user *models.User, product models.Product) error {
	log := userLogger(s.logger, user, models.OrderSPR)

	if err := s.adapter.LockAccess(ctx, s.newSession(user, product)); err != nil {
		log.Err(err).Str("func", "keyManagementService.RevokeSubscriber").Msg("error revoking subscriber")
		return fmt.Errorf("%w: SPR: %w", ErrKeyExchange, err)
	}

	log.Info().Str("func", "keyManagementService.RevokeSubscriber").Msg("subscriber revoked")
	return nil
}

func (s *keyManagementService) newSession(user *models.User, product models.Product) *models.Session {
	s.traces.SetTraceDirectory(s.cfg.TransferTraceDirectory(user.UserID()))
	return models.NewSession(user, product, s.cfg)
}

func userLogger(l *logger.Logger, user *models.User, orderType models.OrderType) *logger.Logger {
	partner := user.Partner()
	child := l.ForUser(partner.Bank().HostID(), partner.PartnerID(), user.UserID())
	return &logger.Logger{Logger: child.With().Str("order_type", orderType.Code()).Logger()}
}
