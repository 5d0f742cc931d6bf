// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FetchOutcome tells whether a download delivered data.
type FetchOutcome uint8

const (
	// FetchDelivered means the bank returned order data.
	FetchDelivered FetchOutcome = iota + 1
	// FetchEmpty means the bank had no data for the requested window.
	FetchEmpty
)

func (o FetchOutcome) String() string {
	switch o {
	case FetchDelivered:
		return "delivered"
	case FetchEmpty:
		return "empty"
	}
	return "unknown"
}

// FetchResult is the result of a download that did not fail.
type FetchResult struct {
	Outcome FetchOutcome
	// Content holds the order data of in-memory downloads.
	Content []byte
	// Path is the destination file of downloads written to disk. It exists
	// only when Outcome is FetchDelivered.
	Path string
}

// Delivered reports whether the bank returned data.
func (r FetchResult) Delivered() bool { return r.Outcome == FetchDelivered }
