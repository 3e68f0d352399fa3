package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotURL is recorded for URL-list entries that do not start with
	// http:// or https://.
	ErrNotURL = errors.New("not an http(s) url")

	// ErrNoStream is recorded when an opener reports success without
	// returning a stream.
	ErrNoStream = errors.New("source resolved to no stream")
)
