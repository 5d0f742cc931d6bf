// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the client.
// It is populated by merging environment variables, an optional config file
// and command-line overrides.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the root directory and the record store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Bank describes the EBICS host the subscriber was registered with.
	Bank Bank `envPrefix:"BANK_"`

	// Subscriber holds the partner/user ids and the profile of the default
	// user.
	Subscriber Subscriber `envPrefix:"SUBSCRIBER_"`

	// Product describes the client software announced to the bank.
	Product Product `envPrefix:"PRODUCT_"`

	// Adapter holds the bank transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// Storage groups the on-disk settings of the client.
type Storage struct {
	// RootDir is the client root directory holding users, letters, traces,
	// logs and records.
	// Env: STORAGE_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// Backend selects the record store: "sqlite" (default) or "files".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the sqlite record store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the sqlite record store.
type DB struct {
	// DSN is the sqlite database file. Defaults to <root>/ebics.db.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Bank describes the EBICS host.
type Bank struct {
	// URL is the EBICS endpoint of the bank.
	// Env: BANK_URL
	URL string `env:"URL"`
	// Name is the human-readable bank name.
	// Env: BANK_NAME
	Name string `env:"NAME"`
	// HostID is the EBICS host ID.
	// Env: BANK_HOST_ID
	HostID string `env:"HOST_ID"`
	// UseCertificate tells whether the bank works with X.509 certificates.
	// Nil means unset, so an explicit false in a later source still applies.
	// Env: BANK_USE_CERTIFICATE
	UseCertificate *bool `env:"USE_CERTIFICATE"`
}

// Subscriber holds the default user settings.
type Subscriber struct {
	// Env: SUBSCRIBER_PARTNER_ID
	PartnerID string `env:"PARTNER_ID"`
	// Env: SUBSCRIBER_USER_ID
	UserID string `env:"USER_ID"`
	// Env: SUBSCRIBER_NAME
	Name string `env:"NAME"`
	// Env: SUBSCRIBER_EMAIL
	Email string `env:"EMAIL"`
	// Env: SUBSCRIBER_COUNTRY
	Country string `env:"COUNTRY"`
	// Env: SUBSCRIBER_ORGANIZATION
	Organization string `env:"ORGANIZATION"`
	// Password protects the subscriber key material.
	// Env: SUBSCRIBER_PASSWORD
	Password string `env:"PASSWORD"`
	// SkipKeystore disables the keystore export on user creation.
	// Env: SUBSCRIBER_SKIP_KEYSTORE
	SkipKeystore *bool `env:"SKIP_KEYSTORE"`
}

// Product describes the client software.
type Product struct {
	// Env: PRODUCT_NAME
	Name string `env:"NAME"`
	// Language is the ISO 639 language code, stored lower-case.
	// Env: PRODUCT_LANGUAGE
	Language string `env:"LANGUAGE"`
	// Country is the ISO 3166 country code, stored upper-case.
	// Env: PRODUCT_COUNTRY
	Country string `env:"COUNTRY"`
	// Institution is the optional institution code sent with the product.
	// Env: PRODUCT_INSTITUTION
	Institution string `env:"INSTITUTION"`
}

// Adapter holds the bank transport settings.
type Adapter struct {
	// RequestTimeout bounds a single request to the bank (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Overrides carries the command-line settings that win over every other
// source.
type Overrides struct {
	RootDir        string
	ConfigFilePath string
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Config file (path resolved from overrides, env or the root directory)
//  3. Command-line overrides
//
// Defaults are applied to the remaining empty fields.
func GetStructuredConfig(overrides Overrides) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		withFile().
		withOverrides(overrides).
		build()
}
