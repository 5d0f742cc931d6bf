// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/MKhiriev/go-ebics-client/internal/config"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/service"
	"github.com/MKhiriev/go-ebics-client/models"
)

type App struct {
	users     service.UserService
	keys      service.KeyManagementService
	transfers service.FileTransferService
	sequencer service.OrderSequencer
	lifecycle service.LifecycleService

	cfg    *config.ClientConfig
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, logger *logger.Logger) *App {
	return &App{
		users:     services.Users,
		keys:      services.Keys,
		transfers: services.Transfers,
		sequencer: services.Sequencer,
		lifecycle: services.Lifecycle,
		cfg:       cfg,
		logger:    logger,
	}
}

// plan is an invocation whose arguments passed validation.
type plan struct {
	fetch    models.OrderType
	send     models.OrderType
	start    *time.Time
	end      *time.Time
	content  []byte
	hasFetch bool
	hasSend  bool
}

// Run executes inv. Invalid arguments are rejected before any bank or
// storage call. Once the run has started, dirty entities are persisted and
// traces cleared on return, also when a step failed.
func (a *App) Run(ctx context.Context, inv Invocation) (report Report, err error) {
	p, err := a.prepare(&inv)
	if err != nil {
		return Report{}, err
	}

	defer func() {
		if shutdownErr := a.lifecycle.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			a.logger.Err(shutdownErr).Str("func", "App.Run").Msg("error during shutdown")
			err = errors.Join(err, fmt.Errorf("shutdown: %w", shutdownErr))
		}
	}()

	user, err := a.defaultUser(ctx, inv.Create)
	if err != nil {
		return report, err
	}
	report.UserID = user.UserID()
	report.Created = inv.Create
	product := a.cfg.Product

	if inv.Letters {
		if err = a.users.CreateLetters(user, false); err != nil {
			return report, err
		}
		report.Letters = true
	}

	keySteps := []struct {
		requested bool
		run       func(context.Context, *models.User, models.Product) error
		done      *bool
	}{
		{inv.INI, a.keys.SendINI, &report.INI},
		{inv.HIA, a.keys.SendHIA, &report.HIA},
		{inv.HPB, a.keys.SendHPB, &report.HPB},
		{inv.SPR, a.keys.RevokeSubscriber, &report.SPR},
	}
	for _, step := range keySteps {
		if !step.requested {
			continue
		}
		if err = step.run(ctx, user, product); err != nil {
			return report, err
		}
		*step.done = true
	}

	if p.hasFetch {
		result, err := a.transfers.FetchFile(ctx, inv.Output, user, product, p.fetch, inv.Test, p.start, p.end)
		if err != nil {
			return report, err
		}
		report.Fetch = &FetchReport{OrderType: p.fetch, Result: result}
	}

	if p.hasSend {
		if err = a.transfers.SendFile(ctx, p.content, user, product, p.send); err != nil {
			return report, err
		}
		report.Sent = p.send
	}

	if inv.SkipOrders > 0 {
		if err = a.sequencer.Skip(user.Partner(), inv.SkipOrders); err != nil {
			return report, err
		}
		report.SkippedOrders = inv.SkipOrders
	}

	return report, nil
}

func (a *App) defaultUser(ctx context.Context, create bool) (*models.User, error) {
	sub := a.cfg.Subscriber
	credentials := models.StaticPassword(sub.Password)

	if !create {
		return a.users.LoadUser(ctx, a.cfg.Bank.HostID, sub.PartnerID, sub.UserID, credentials)
	}

	return a.users.CreateUser(ctx, models.CreateUserRequest{
		BankURL:          a.cfg.Bank.URL,
		BankName:         a.cfg.Bank.Name,
		HostID:           a.cfg.Bank.HostID,
		PartnerID:        sub.PartnerID,
		UserID:           sub.UserID,
		Profile:          sub.Profile,
		UseCertificate:   a.cfg.Bank.UseCertificate,
		SaveCertificates: sub.SaveCertificates,
		Credentials:      credentials,
	})
}

func (a *App) prepare(inv *Invocation) (plan, error) {
	var p plan

	if inv.Create {
		if err := a.cfg.ValidateForCreate(); err != nil {
			return p, err
		}
	}

	if inv.SkipOrders < 0 {
		return p, fmt.Errorf("%w: skip_order must not be negative, got %d", service.ErrUsage, inv.SkipOrders)
	}

	var err error
	if p.start, err = parseDate("from", inv.From); err != nil {
		return p, err
	}
	if p.end, err = parseDate("to", inv.To); err != nil {
		return p, err
	}
	if p.end != nil && p.start == nil {
		return p, fmt.Errorf("%w: start date required if end date is given", service.ErrUsage)
	}

	if p.fetch, p.hasFetch = inv.first(FetchOrderTypes); p.hasFetch {
		if inv.Output == "" {
			return p, fmt.Errorf("%w: output file not set", service.ErrUsage)
		}
		if _, err = os.Stat(inv.Output); err == nil {
			return p, fmt.Errorf("%w: file already exists %s", service.ErrUsage, inv.Output)
		}
	}

	if p.send, p.hasSend = inv.first(SendOrderTypes); p.hasSend {
		if inv.Input == "" {
			return p, fmt.Errorf("%w: input file not set", service.ErrUsage)
		}
		if p.content, err = os.ReadFile(inv.Input); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return p, fmt.Errorf("%w: input file does not exist %s", service.ErrUsage, inv.Input)
			}
			return p, fmt.Errorf("%w: read input file: %w", service.ErrUsage, err)
		}
	}

	return p, nil
}

func parseDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %s date %q is not yyyy-MM-dd", service.ErrUsage, name, value)
	}
	return &d, nil
}
