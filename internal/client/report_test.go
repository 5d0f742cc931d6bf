// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"testing"

	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/stretchr/testify/assert"
)

func TestReport_String(t *testing.T) {
	r := Report{
		UserID:        "USER1",
		INI:           true,
		Fetch:         &FetchReport{OrderType: models.OrderSTA, Result: models.FetchResult{Outcome: models.FetchEmpty}},
		Sent:          models.OrderCCT,
		SkippedOrders: 2,
	}

	assert.Equal(t, "user USER1 loaded\nINI done\nSTA: no download data available\nCCT sent\n2 order ids skipped\n", r.String())
}

func TestReport_String_Delivered(t *testing.T) {
	r := Report{
		UserID:  "USER1",
		Created: true,
		Fetch:   &FetchReport{OrderType: models.OrderC53, Result: models.FetchResult{Outcome: models.FetchDelivered, Path: "/tmp/c53.xml"}},
	}

	assert.Equal(t, "user USER1 created\nC53 fetched into /tmp/c53.xml\n", r.String())
}
