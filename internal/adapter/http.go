package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/extconfig/internal/utils"
)

type urlOpener struct {
	client *utils.HTTPClient
}

// NewURLOpener returns a [SourceOpener] that fetches locations with an HTTP
// GET through client. The response body is streamed to the caller without
// buffering; timeouts are whatever client and the context impose.
func NewURLOpener(client *utils.HTTPClient) SourceOpener {
	return &urlOpener{client: client}
}

func (o *urlOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLocation, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an http(s) url", ErrMalformedLocation, location)
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		SetDoNotParseResponse(true).
		Get(location)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}

	body := resp.RawBody()
	if err := mapHTTPStatus(location, resp.StatusCode()); err != nil {
		if body != nil {
			body.Close()
		}
		return nil, err
	}
	if body == nil {
		return io.NopCloser(strings.NewReader("")), nil
	}

	return body, nil
}
