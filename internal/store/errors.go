package store

import "errors"

// Sentinel errors returned by the properties codec and file storage.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrDecodeProperties is returned when a stream is not valid
	// .properties text.
	ErrDecodeProperties = errors.New("error decoding properties")

	// ErrEncodeProperties is returned when a configuration map cannot be
	// serialised.
	ErrEncodeProperties = errors.New("error encoding properties")
)
