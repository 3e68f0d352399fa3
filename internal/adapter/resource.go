package adapter

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

type resourceOpener struct {
	fsys fs.FS
}

// NewResourceOpener returns a [SourceOpener] that reads bundled resources
// from fsys. Locations are rooted at fsys: "/prod.properties" and
// "prod.properties" name the same file. A nil fsys means no resources are
// bundled and every location is reported as not found.
func NewResourceOpener(fsys fs.FS) SourceOpener {
	return &resourceOpener{fsys: fsys}
}

func (o *resourceOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o.fsys == nil {
		return nil, fmt.Errorf("%w: %s: no resources bundled", ErrSourceNotFound, location)
	}

	name := strings.TrimPrefix(location, "/")
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q is not a valid resource path", ErrMalformedLocation, location)
	}

	f, err := o.fsys.Open(name)
	if err != nil {
		return nil, mapFSError(location, err)
	}

	if err := rejectDirectory(f, location); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

type statter interface {
	Stat() (fs.FileInfo, error)
}

func rejectDirectory(f statter, location string) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("error reading %s: %w", location, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMalformedLocation, location)
	}

	return nil
}
