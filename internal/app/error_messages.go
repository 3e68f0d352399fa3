// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// extconfig HTTP handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies to describe why a request could not be served.
package app

const (
	// MsgKeyNotFound is returned when the requested key is absent from the
	// merged configuration.
	MsgKeyNotFound = "key not found"

	// MsgNoMergeReport is returned when the report is requested before the
	// first merge run has finished.
	MsgNoMergeReport = "no merge has run yet"
)
