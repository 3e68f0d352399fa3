// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package host implements the extconfig process lifecycle.
//
// It loads the base properties, runs the external configuration merge once,
// emits the merged map and optionally keeps serving it over HTTP.
package host
