// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// validate checks the settings every invocation needs. All problems are
// reported at once.
func (c *ClientConfig) validate() error {
	var errs []error

	required := []struct {
		name  string
		value string
	}{
		{"STORAGE_ROOT_DIR", c.Storage.RootDir},
		{"BANK_HOST_ID", c.Bank.HostID},
		{"SUBSCRIBER_PARTNER_ID", c.Subscriber.PartnerID},
		{"SUBSCRIBER_USER_ID", c.Subscriber.UserID},
		{"SUBSCRIBER_PASSWORD", c.Subscriber.Password},
		{"PRODUCT_NAME", c.Product.Name},
		{"PRODUCT_LANGUAGE", c.Product.Language},
		{"PRODUCT_COUNTRY", c.Session.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSetting, r.name))
		}
	}

	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSetting, "STORAGE_DB_DSN"))
		}
	case BackendFiles:
	default:
		errs = append(errs, fmt.Errorf("%w: STORAGE_BACKEND %q", ErrInvalidSetting, c.Storage.Backend))
	}

	if c.Adapter.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: ADAPTER_REQUEST_TIMEOUT %s", ErrInvalidSetting, c.Adapter.RequestTimeout))
	}

	return errors.Join(errs...)
}

// ValidateForCreate checks the settings needed to create the default user:
// the bank endpoint and the subscriber profile.
func (c *ClientConfig) ValidateForCreate() error {
	var errs []error

	if strings.TrimSpace(c.Bank.URL) == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSetting, "BANK_URL"))
	} else if u, err := url.Parse(c.Bank.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: BANK_URL %q", ErrInvalidSetting, c.Bank.URL))
	}

	required := []struct {
		name  string
		value string
	}{
		{"BANK_NAME", c.Bank.Name},
		{"SUBSCRIBER_NAME", c.Subscriber.Profile.Name},
		{"SUBSCRIBER_EMAIL", c.Subscriber.Profile.Email},
		{"SUBSCRIBER_COUNTRY", c.Subscriber.Profile.Country},
		{"SUBSCRIBER_ORGANIZATION", c.Subscriber.Profile.Organization},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSetting, r.name))
		}
	}

	return errors.Join(errs...)
}
