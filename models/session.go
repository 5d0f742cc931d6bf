// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Well-known session parameters.
const (
	ParamFormat = "FORMAT"
	ParamTest   = "TEST"

	// StatementFormat is the format requested for every download.
	StatementFormat = "pain.xxx.cfonb160.dct"
)

// SessionParam is a single named session parameter.
type SessionParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Session binds a user, a product and the client configuration for exactly
// one key-exchange or transfer operation. Sessions are never reused.
type Session struct {
	User    *User
	Product Product
	Config  Configuration

	params []SessionParam
}

// NewSession returns a fresh session without parameters.
func NewSession(user *User, product Product, cfg Configuration) *Session {
	return &Session{User: user, Product: product, Config: cfg}
}

// AddParam sets a session parameter. Parameters keep their insertion order;
// setting an existing name replaces its value in place.
func (s *Session) AddParam(name, value string) {
	for i := range s.params {
		if s.params[i].Name == name {
			s.params[i].Value = value
			return
		}
	}
	s.params = append(s.params, SessionParam{Name: name, Value: value})
}

// Param returns the value of a session parameter.
func (s *Session) Param(name string) (string, bool) {
	for _, p := range s.params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Params returns a copy of the session parameters in insertion order.
func (s *Session) Params() []SessionParam {
	return append([]SessionParam(nil), s.params...)
}

// DateWindow is the inclusive date range of a download. A zero window asks
// the bank for everything not fetched yet.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether no window was requested.
func (w DateWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}
