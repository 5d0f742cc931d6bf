// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"root", "config", "create", "letters", "ini", "hia", "hpb", "spr",
		"sta", "z54", "cct", "output", "input", "from", "to", "test", "skip_order"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestNewRootCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})

	err := cmd.Execute()
	require.Error(t, err)
}
