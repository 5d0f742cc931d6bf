// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package trace keeps the request and response traces of bank transfers.
//
// Traces are written into the directory of the user the current operation
// runs for. Every trace written during a run is remembered, and Clear removes
// them at shutdown.
package trace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/utils"
)

//go:generate mockgen -source=trace.go -destination=../mock/trace_mock.go -package=mock

// Manager binds the trace directory and writes traces into it.
type Manager interface {
	// SetTraceDirectory points further traces at dir.
	SetTraceDirectory(dir string)
	// Trace writes payload as a trace file whose name contains name.
	Trace(name string, payload []byte) error
	// Clear removes every trace written since the manager was created.
	Clear() error
}

// ErrNoTraceDirectory is returned by Trace before a directory is bound.
var ErrNoTraceDirectory = errors.New("trace directory is not set")

type manager struct {
	mu      sync.Mutex
	dir     string
	written []string

	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewManager returns a [Manager] naming trace files with ids.
func NewManager(ids utils.IDGenerator, logger *logger.Logger) Manager {
	return &manager{
		ids:    ids,
		logger: logger,
	}
}

func (m *manager) SetTraceDirectory(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dir = dir
}

func (m *manager) Trace(name string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dir == "" {
		return ErrNoTraceDirectory
	}

	path := filepath.Join(m.dir, fmt.Sprintf("%s-%s.trace", sanitize(name), m.ids.Generate()))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		m.logger.Err(err).Str("func", "trace.Trace").Str("file", path).Msg("failed to write trace")
		return fmt.Errorf("failed to write trace %s: %w", path, err)
	}
	m.written = append(m.written, path)

	return nil
}

func (m *manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, path := range m.written {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	m.written = nil

	if err := errors.Join(errs...); err != nil {
		m.logger.Err(err).Str("func", "trace.Clear").Msg("failed to remove traces")
		return fmt.Errorf("failed to clear traces: %w", err)
	}

	return nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
