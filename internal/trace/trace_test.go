// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id%d", s.n)
}

func TestTrace_WritesIntoBoundDirectory(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(&seqIDs{}, logger.Nop())
	m.SetTraceDirectory(dir)

	require.NoError(t, m.Trace("FDL-request", []byte("payload")))

	raw, err := os.ReadFile(filepath.Join(dir, "FDL-request-id1.trace"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(raw))
}

func TestTrace_SanitizesName(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(&seqIDs{}, logger.Nop())
	m.SetTraceDirectory(dir)

	require.NoError(t, m.Trace("../escape me", nil))

	_, err := os.Stat(filepath.Join(dir, "___escape_me-id1.trace"))
	assert.NoError(t, err)
}

func TestTrace_NoDirectory(t *testing.T) {
	m := NewManager(&seqIDs{}, logger.Nop())
	assert.ErrorIs(t, m.Trace("x", nil), ErrNoTraceDirectory)
}

func TestClear_RemovesOnlyWrittenTraces(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	keep := filepath.Join(first, "keep.txt")
	require.NoError(t, os.WriteFile(keep, nil, 0o600))

	m := NewManager(&seqIDs{}, logger.Nop())
	m.SetTraceDirectory(first)
	require.NoError(t, m.Trace("a", nil))
	m.SetTraceDirectory(second)
	require.NoError(t, m.Trace("b", nil))

	require.NoError(t, m.Clear())

	entries, err := os.ReadDir(first)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep.txt", entries[0].Name())

	entries, err = os.ReadDir(second)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClear_Idempotent(t *testing.T) {
	m := NewManager(&seqIDs{}, logger.Nop())
	m.SetTraceDirectory(t.TempDir())
	require.NoError(t, m.Trace("a", nil))

	require.NoError(t, m.Clear())
	assert.NoError(t, m.Clear())
}
