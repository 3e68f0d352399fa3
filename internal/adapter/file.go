package adapter

import (
	"context"
	"fmt"
	"io"
	"os"
)

type fileOpener struct{}

// NewFileOpener returns a [SourceOpener] that opens locations as plain
// filesystem paths, exactly as given.
func NewFileOpener() SourceOpener {
	return &fileOpener{}
}

func (o *fileOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if location == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedLocation)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, mapFSError(location, err)
	}

	if err := rejectDirectory(f, location); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}
