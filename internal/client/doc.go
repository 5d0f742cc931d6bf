// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command dispatcher of the EBICS client.
//
// One invocation creates or loads the default user, then runs the requested
// steps in a fixed order: letters, INI, HIA, HPB, SPR, one fetch, one send
// and the order-id skip. Fetch and send order types are each picked from a
// fixed priority list; only the first requested type of each list runs.
// Dirty entities are persisted when the run ends, whatever its outcome.
package client
