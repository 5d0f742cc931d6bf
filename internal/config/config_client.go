// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-ebics-client/models"
)

// ClientConfig is the resolved configuration handed to the client
// components.
type ClientConfig struct {
	Storage    ClientStorage
	Bank       ClientBank
	Subscriber ClientSubscriber
	Product    models.Product
	Adapter    ClientAdapter

	// Session is bound into every session the client builds.
	Session models.Configuration

	// LogDir is where client.log is written.
	LogDir string
}

type ClientStorage struct {
	RootDir string
	Backend string
	DSN     string
}

type ClientBank struct {
	URL            string
	Name           string
	HostID         string
	UseCertificate bool
}

type ClientSubscriber struct {
	PartnerID string
	UserID    string
	Profile   models.Profile
	Password  string
	// SaveCertificates enables the keystore export on user creation.
	SaveCertificates bool
}

type ClientAdapter struct {
	RequestTimeout time.Duration
}

// GetClientConfig builds the configuration from all sources and validates
// the settings every invocation needs. Settings needed only when a user is
// created are checked by [ClientConfig.ValidateForCreate].
func GetClientConfig(overrides Overrides) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error building structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	language := strings.ToLower(strings.TrimSpace(cfg.Product.Language))
	country := strings.ToUpper(strings.TrimSpace(cfg.Product.Country))

	return &ClientConfig{
		Storage: ClientStorage{
			RootDir: cfg.Storage.RootDir,
			Backend: strings.ToLower(cfg.Storage.Backend),
			DSN:     cfg.Storage.DB.DSN,
		},
		Bank: ClientBank{
			URL:            cfg.Bank.URL,
			Name:           cfg.Bank.Name,
			HostID:         cfg.Bank.HostID,
			UseCertificate: isSet(cfg.Bank.UseCertificate),
		},
		Subscriber: ClientSubscriber{
			PartnerID: cfg.Subscriber.PartnerID,
			UserID:    cfg.Subscriber.UserID,
			Profile: models.Profile{
				Name:         cfg.Subscriber.Name,
				Email:        cfg.Subscriber.Email,
				Country:      cfg.Subscriber.Country,
				Organization: cfg.Subscriber.Organization,
			},
			Password:         cfg.Subscriber.Password,
			SaveCertificates: !isSet(cfg.Subscriber.SkipKeystore),
		},
		Product: models.Product{
			Name:            cfg.Product.Name,
			Language:        language,
			InstitutionCode: cfg.Product.Institution,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: models.Configuration{
			RootDir:               cfg.Storage.RootDir,
			Language:              language,
			Country:               country,
			Revision:              models.DefaultRevision,
			SignatureVersion:      models.DefaultSignatureVersion,
			AuthenticationVersion: models.DefaultAuthenticationVersion,
			EncryptionVersion:     models.DefaultEncryptionVersion,
		},
		LogDir: filepath.Join(cfg.Storage.RootDir, "logs"),
	}
}

// isSet reports whether an optional flag is present and true.
func isSet(v *bool) bool {
	return v != nil && *v
}
