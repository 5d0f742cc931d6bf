// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the EBICS counterparties known to the client (Bank,
// Partner, User), the immutable Product descriptor, the per-operation Session
// and the persisted record codecs for the entities.
//
// Entities track whether their in-memory state diverged from the persisted
// record. The flag is raised by every mutating method and cleared only by
// MarkSaved, which the persistence layer calls after a successful write.
package models
