// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSequencer_Skip(t *testing.T) {
	for _, count := range []int{0, 1, 5, 100} {
		partner := newTestUser().Partner()
		before := partner.OrderCounter()

		require.NoError(t, NewOrderSequencer(logger.Nop()).Skip(partner, count))
		assert.Equal(t, before+uint64(count), partner.OrderCounter())
	}
}

func TestOrderSequencer_SkipThenUploadUsesNextID(t *testing.T) {
	partner := newTestUser().Partner()

	require.NoError(t, NewOrderSequencer(logger.Nop()).Skip(partner, 3))
	assert.Equal(t, models.FormatOrderID(4), partner.NextOrderID())
}

func TestOrderSequencer_SkipZeroKeepsPartnerClean(t *testing.T) {
	partner := newTestUser().Partner()

	require.NoError(t, NewOrderSequencer(logger.Nop()).Skip(partner, 0))
	assert.False(t, partner.NeedsSave())
}

func TestOrderSequencer_NegativeCount(t *testing.T) {
	partner := newTestUser().Partner()

	err := NewOrderSequencer(logger.Nop()).Skip(partner, -1)
	require.ErrorIs(t, err, ErrUsage)
	assert.Zero(t, partner.OrderCounter())
}
