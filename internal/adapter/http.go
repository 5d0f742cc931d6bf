// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ebics-client/internal/config"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/trace"
	"github.com/MKhiriev/go-ebics-client/internal/utils"
	"github.com/MKhiriev/go-ebics-client/models"
)

type httpBankAdapter struct {
	client *utils.HTTPClient
	traces trace.Manager
	ids    utils.IDGenerator

	logger *logger.Logger
}

// NewHTTPBankAdapter constructs the HTTP implementation of [BankAdapter].
// Requests go to the URL of the session user's bank and are bounded by
// adapterCfg.RequestTimeout. Every request and response body is written to
// traces.
func NewHTTPBankAdapter(adapterCfg config.ClientAdapter, traces trace.Manager, ids utils.IDGenerator, logger *logger.Logger) BankAdapter {
	return &httpBankAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		traces: traces,
		ids:    ids,
		logger: logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// send posts req to the bank of s and decodes the response. Bank return
// codes other than OK are returned as errors together with the decoded
// response.
func (h *httpBankAdapter) send(ctx context.Context, s *models.Session, req orderRequest) (orderResponse, error) {
	log := h.logger.ForUser(req.HostID, req.PartnerID, req.UserID)

	endpoint, err := normalizeBaseURL(s.User.Partner().Bank().URL())
	if err != nil {
		return orderResponse{}, fmt.Errorf("invalid bank url: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return orderResponse{}, fmt.Errorf("encode %s request: %w", req.OrderType, err)
	}
	h.trace(log, string(req.OrderType)+"-request", body)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return orderResponse{}, fmt.Errorf("%s request: %w", req.OrderType, err)
	}
	h.trace(log, string(req.OrderType)+"-response", resp.Body())

	if err = mapHTTPError(resp); err != nil {
		return orderResponse{}, err
	}

	var out orderResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return orderResponse{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	log.Debug().
		Str("func", "httpBankAdapter.send").
		Str("order_type", string(req.OrderType)).
		Str("return_code", out.ReturnCode).
		Msg("bank response received")

	return out, mapReturnCode(out.ReturnCode, out.ReportText)
}

// trace never fails the order; a missing trace is only logged.
func (h *httpBankAdapter) trace(log *logger.Logger, name string, payload []byte) {
	if err := h.traces.Trace(name, payload); err != nil {
		log.Debug().Err(err).Str("func", "httpBankAdapter.trace").Str("trace", name).Msg("trace not written")
	}
}
