// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import "context"

// Host defines the lifecycle contract of a runnable extconfig process.
type Host interface {
	// Run merges, emits the result and, when configured, serves it until
	// ctx is done or a shutdown signal arrives.
	Run(ctx context.Context) error
}
