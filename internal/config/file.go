// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// keys are used for JSON and YAML.
type StructuredFileConfig struct {
	Storage struct {
		RootDir string `json:"root_dir" yaml:"root_dir"`
		Backend string `json:"backend" yaml:"backend"`
		DB      struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Bank struct {
		URL            string `json:"url" yaml:"url"`
		Name           string `json:"name" yaml:"name"`
		HostID         string `json:"host_id" yaml:"host_id"`
		UseCertificate *bool  `json:"use_certificate" yaml:"use_certificate"`
	} `json:"bank,omitempty" yaml:"bank,omitempty"`

	Subscriber struct {
		PartnerID    string `json:"partner_id" yaml:"partner_id"`
		UserID       string `json:"user_id" yaml:"user_id"`
		Name         string `json:"name" yaml:"name"`
		Email        string `json:"email" yaml:"email"`
		Country      string `json:"country" yaml:"country"`
		Organization string `json:"organization" yaml:"organization"`
		Password     string `json:"password" yaml:"password"`
		SkipKeystore *bool  `json:"skip_keystore" yaml:"skip_keystore"`
	} `json:"subscriber,omitempty" yaml:"subscriber,omitempty"`

	Product struct {
		Name        string `json:"name" yaml:"name"`
		Language    string `json:"language" yaml:"language"`
		Country     string `json:"country" yaml:"country"`
		Institution string `json:"institution" yaml:"institution"`
	} `json:"product,omitempty" yaml:"product,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`
}

// parseFile reads a JSON or YAML config file. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Storage: Storage{
			RootDir: fileCfg.Storage.RootDir,
			Backend: fileCfg.Storage.Backend,
			DB:      DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Bank: Bank{
			URL:            fileCfg.Bank.URL,
			Name:           fileCfg.Bank.Name,
			HostID:         fileCfg.Bank.HostID,
			UseCertificate: fileCfg.Bank.UseCertificate,
		},
		Subscriber: Subscriber{
			PartnerID:    fileCfg.Subscriber.PartnerID,
			UserID:       fileCfg.Subscriber.UserID,
			Name:         fileCfg.Subscriber.Name,
			Email:        fileCfg.Subscriber.Email,
			Country:      fileCfg.Subscriber.Country,
			Organization: fileCfg.Subscriber.Organization,
			Password:     fileCfg.Subscriber.Password,
			SkipKeystore: fileCfg.Subscriber.SkipKeystore,
		},
		Product: Product{
			Name:        fileCfg.Product.Name,
			Language:    fileCfg.Product.Language,
			Country:     fileCfg.Product.Country,
			Institution: fileCfg.Product.Institution,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
