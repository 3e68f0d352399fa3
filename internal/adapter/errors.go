package adapter

import "errors"

var (
	// ErrSourceNotFound is returned when a resource, file or URL does not
	// exist (including HTTP 404 and 410).
	ErrSourceNotFound = errors.New("source not found")

	// ErrMalformedLocation is returned when a location cannot name a source
	// of the opener's kind: invalid resource paths, directories, URLs
	// without a host.
	ErrMalformedLocation = errors.New("malformed source location")

	// ErrUnexpectedStatus is returned when a URL answers with a non-2xx
	// status other than the not-found ones.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
