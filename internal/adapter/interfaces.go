// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter opens external configuration sources as byte streams.
//
// Every source kind is hidden behind [SourceOpener]: bundled resources
// ([NewResourceOpener]), plain files ([NewFileOpener]) and HTTP(S) URLs
// ([NewURLOpener]). Implementations classify failures with the sentinel
// values in errors.go so that callers can use [errors.Is] to tell a missing
// source ([ErrSourceNotFound]) from a broken one.
package adapter

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/source_opener_mock.go -package=mock

// SourceOpener resolves a location string to a readable stream.
type SourceOpener interface {
	// Open returns a stream for location. The caller must close it.
	// A missing source yields an error wrapping [ErrSourceNotFound]; a
	// location the opener cannot interpret yields [ErrMalformedLocation].
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}
