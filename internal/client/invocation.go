// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strconv"

	"github.com/MKhiriev/go-ebics-client/models"
	"github.com/spf13/pflag"
)

// FetchOrderTypes are the download orders in dispatch priority.
var FetchOrderTypes = []models.OrderType{
	models.OrderSTA, models.OrderVMK,
	models.OrderC52, models.OrderC53, models.OrderC54,
	models.OrderZDF, models.OrderZB6, models.OrderPTK, models.OrderHAC,
	models.OrderZ01, models.OrderZ53, models.OrderZ54,
}

// SendOrderTypes are the upload orders in dispatch priority.
var SendOrderTypes = []models.OrderType{
	models.OrderXKD, models.OrderFUL, models.OrderXCT, models.OrderXE2, models.OrderCCT,
}

var orderUsage = map[models.OrderType]string{
	models.OrderSTA: "Fetch STA file (MT940 file)",
	models.OrderVMK: "Fetch VMK file (MT942 file)",
	models.OrderC52: "Fetch camt.052 file",
	models.OrderC53: "Fetch camt.053 file",
	models.OrderC54: "Fetch camt.054 file",
	models.OrderZDF: "Fetch ZDF file (zip file with documents)",
	models.OrderZB6: "Fetch ZB6 file",
	models.OrderPTK: "Fetch client protocol file (TXT)",
	models.OrderHAC: "Fetch client protocol file (XML)",
	models.OrderZ01: "Fetch Z01 file",
	models.OrderZ53: "Fetch Z53 file (Swiss account statement)",
	models.OrderZ54: "Fetch Z54 file (Swiss batch booking)",
	models.OrderXKD: "Send payment order file (DTA format)",
	models.OrderFUL: "Send payment order file (any format)",
	models.OrderXCT: "Send XCT file (any format)",
	models.OrderXE2: "Send XE2 file (any format)",
	models.OrderCCT: "Send CCT file (any format)",
}

// Invocation is the set of steps requested for one run.
type Invocation struct {
	Create  bool
	Letters bool
	INI     bool
	HIA     bool
	HPB     bool
	SPR     bool

	// Orders holds the requested fetch and send order types.
	Orders map[models.OrderType]bool

	Output string
	Input  string
	// From and To bound the download window, formatted as 2006-01-02.
	From string
	To   string
	Test bool

	SkipOrders int
}

// Request marks orderType as requested.
func (inv *Invocation) Request(orderType models.OrderType) {
	if inv.Orders == nil {
		inv.Orders = make(map[models.OrderType]bool)
	}
	inv.Orders[orderType] = true
}

// Requested reports whether orderType was requested.
func (inv *Invocation) Requested(orderType models.OrderType) bool {
	return inv.Orders[orderType]
}

// first returns the highest priority requested type of list.
func (inv *Invocation) first(list []models.OrderType) (models.OrderType, bool) {
	for _, t := range list {
		if inv.Requested(t) {
			return t, true
		}
	}
	return "", false
}

// BindFlags registers the invocation flags on fs.
func BindFlags(fs *pflag.FlagSet, inv *Invocation) {
	fs.BoolVar(&inv.Create, "create", false, "Create and initialize EBICS user")
	fs.BoolVar(&inv.Letters, "letters", false, "Create INI Letters")
	fs.BoolVar(&inv.INI, "ini", false, "Send INI request")
	fs.BoolVar(&inv.HIA, "hia", false, "Send HIA request")
	fs.BoolVar(&inv.HPB, "hpb", false, "Send HPB request")
	fs.BoolVar(&inv.SPR, "spr", false, "Send SPR request (revoke subscriber)")

	for _, list := range [][]models.OrderType{FetchOrderTypes, SendOrderTypes} {
		for _, t := range list {
			f := fs.VarPF(&orderFlag{inv: inv, orderType: t}, t.FlagName(), "", orderUsage[t])
			f.NoOptDefVal = "true"
		}
	}

	fs.StringVarP(&inv.Output, "output", "o", "", "output file")
	fs.StringVarP(&inv.Input, "input", "i", "", "input file")
	fs.StringVarP(&inv.From, "from", "f", "", "From/start date (yyyy-MM-dd)")
	fs.StringVarP(&inv.To, "to", "t", "", "To/end date (yyyy-MM-dd)")
	fs.BoolVar(&inv.Test, "test", false, "test session")
	fs.IntVar(&inv.SkipOrders, "skip_order", 0, "Skip a number of order ids")
}

// orderFlag is a boolean flag that records its order type in the invocation.
type orderFlag struct {
	inv       *Invocation
	orderType models.OrderType
}

func (f *orderFlag) String() string {
	if f.inv == nil {
		return "false"
	}
	return strconv.FormatBool(f.inv.Requested(f.orderType))
}

func (f *orderFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if v {
		f.inv.Request(f.orderType)
	} else {
		delete(f.inv.Orders, f.orderType)
	}
	return nil
}

func (f *orderFlag) Type() string { return "bool" }
