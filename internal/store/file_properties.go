package store

import (
	"context"
	"fmt"
	"io"
	"os"
)

// propertiesFileStorage is the default implementation of
// [PropertiesFileStorage] backed by the local filesystem.
type propertiesFileStorage struct {
}

// NewPropertiesFileStorage constructs a new [PropertiesFileStorage].
func NewPropertiesFileStorage() PropertiesFileStorage {
	return &propertiesFileStorage{}
}

// LoadFromFile decodes the .properties file at fileName.
//
// Returns a wrapped [os.Open] error when the file cannot be opened, so
// callers can test for [fs.ErrNotExist], or a wrapped [ErrDecodeProperties].
func (s *propertiesFileStorage) LoadFromFile(ctx context.Context, fileName string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("error opening properties file: %w", err)
	}
	defer f.Close()

	return DecodeProperties(f)
}

// SaveToFile writes values to fileName, creating or truncating it.
func (s *propertiesFileStorage) SaveToFile(ctx context.Context, fileName string, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("error creating properties file: %w", err)
	}

	if err := EncodeProperties(f, values); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing properties file: %w", err)
	}

	return nil
}

// WriteTo encodes values to w.
func (s *propertiesFileStorage) WriteTo(ctx context.Context, w io.Writer, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return EncodeProperties(w, values)
}
