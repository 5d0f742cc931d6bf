// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_AddParam_KeepsInsertionOrder(t *testing.T) {
	s := NewSession(nil, Product{Name: "client"}, Configuration{})

	s.AddParam(ParamFormat, StatementFormat)
	s.AddParam(ParamTest, "true")
	s.AddParam(ParamFormat, "other")

	assert.Equal(t, []SessionParam{
		{Name: ParamFormat, Value: "other"},
		{Name: ParamTest, Value: "true"},
	}, s.Params())

	v, ok := s.Param(ParamTest)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = s.Param("MISSING")
	assert.False(t, ok)
}

func TestSession_ParamsReturnsCopy(t *testing.T) {
	s := NewSession(nil, Product{}, Configuration{})
	s.AddParam(ParamFormat, StatementFormat)

	params := s.Params()
	params[0].Value = "changed"

	v, _ := s.Param(ParamFormat)
	assert.Equal(t, StatementFormat, v)
}

func TestConfiguration_UserDirectories(t *testing.T) {
	cfg := Configuration{RootDir: "/root/ebics", Language: "fr", Country: "FR"}

	dirs := cfg.UserDirectories("USER")
	assert.Equal(t, []string{
		filepath.Join("/root/ebics", "users", "USER"),
		filepath.Join("/root/ebics", "users", "USER", "traces"),
		filepath.Join("/root/ebics", "users", "USER", "keystore"),
		filepath.Join("/root/ebics", "users", "USER", "letters"),
	}, dirs)
	assert.Equal(t, "fr_FR", cfg.Locale())
}
