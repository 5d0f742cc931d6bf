// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the EBICS client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Config file (JSON or YAML, chosen by extension)
//  3. Command-line overrides
//
// Boolean settings are pointers, so a source that sets one to false still
// overrides a true from an earlier source.
//
// The main entry point is [GetClientConfig], which returns the validated
// client view of the merged [StructuredConfig].
package config
