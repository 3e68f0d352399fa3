package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
)

func mapFSError(location string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrSourceNotFound, location, err)
	}
	if errors.Is(err, fs.ErrInvalid) {
		return fmt.Errorf("%w: %s: %w", ErrMalformedLocation, location, err)
	}

	return fmt.Errorf("error opening %s: %w", location, err)
}

func mapHTTPStatus(location string, statusCode int) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	switch statusCode {
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: %s: http %d", ErrSourceNotFound, location, statusCode)
	default:
		return fmt.Errorf("%w: %s: http %d %s", ErrUnexpectedStatus, location, statusCode, http.StatusText(statusCode))
	}
}
