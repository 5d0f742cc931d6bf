// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// OrderType is the protocol code of an administrative or business order.
type OrderType string

// Administrative orders.
const (
	OrderINI OrderType = "INI"
	OrderHIA OrderType = "HIA"
	OrderHPB OrderType = "HPB"
	OrderSPR OrderType = "SPR"
)

// Download orders.
const (
	OrderSTA OrderType = "STA" // MT940 statement
	OrderVMK OrderType = "VMK" // MT942 intraday report
	OrderC52 OrderType = "C52" // camt.052
	OrderC53 OrderType = "C53" // camt.053
	OrderC54 OrderType = "C54" // camt.054
	OrderZDF OrderType = "ZDF" // zip with documents
	OrderZB6 OrderType = "ZB6"
	OrderPTK OrderType = "PTK" // customer protocol, text
	OrderHAC OrderType = "HAC" // customer protocol, XML
	OrderZ01 OrderType = "Z01"
	OrderZ53 OrderType = "Z53" // Swiss account statement
	OrderZ54 OrderType = "Z54" // Swiss batch booking
)

// Upload orders.
const (
	OrderXKD OrderType = "XKD" // DTA payment order
	OrderFUL OrderType = "FUL" // payment order, any format
	OrderXCT OrderType = "XCT"
	OrderXE2 OrderType = "XE2"
	OrderCCT OrderType = "CCT"
)

// Code returns the order type code.
func (o OrderType) Code() string { return string(o) }

// FlagName returns the command line flag used to request the order type.
func (o OrderType) FlagName() string { return strings.ToLower(string(o)) }

// OrderAttribute is the EBICS order attribute sent with transfers.
type OrderAttribute string

const (
	// OrderAttributeUpload marks an upload carrying order data and a
	// signature, without a distributed signature.
	OrderAttributeUpload OrderAttribute = "OZHNN"
	// OrderAttributeDownload marks a plain download order.
	OrderAttributeDownload OrderAttribute = "DZHNN"
)
