// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ebics-client/models"
)

// Report lists the steps a run completed.
type Report struct {
	UserID  string
	Created bool
	Letters bool
	INI     bool
	HIA     bool
	HPB     bool
	SPR     bool

	Fetch         *FetchReport
	Sent          models.OrderType
	SkippedOrders int
}

// FetchReport is the outcome of the fetch step.
type FetchReport struct {
	OrderType models.OrderType
	Result    models.FetchResult
}

// String renders one line per completed step.
func (r Report) String() string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	if r.Created {
		line("user %s created", r.UserID)
	} else if r.UserID != "" {
		line("user %s loaded", r.UserID)
	}
	if r.Letters {
		line("letters written")
	}
	for _, step := range []struct {
		done bool
		name string
	}{{r.INI, "INI"}, {r.HIA, "HIA"}, {r.HPB, "HPB"}, {r.SPR, "SPR"}} {
		if step.done {
			line("%s done", step.name)
		}
	}
	if r.Fetch != nil {
		switch r.Fetch.Result.Outcome {
		case models.FetchDelivered:
			line("%s fetched into %s", r.Fetch.OrderType, r.Fetch.Result.Path)
		default:
			line("%s: no download data available", r.Fetch.OrderType)
		}
	}
	if r.Sent != "" {
		line("%s sent", r.Sent)
	}
	if r.SkippedOrders > 0 {
		line("%d order ids skipped", r.SkippedOrders)
	}
	return b.String()
}
