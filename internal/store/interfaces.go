package store

import (
	"context"
	"io"
)

// ConfigurationStore is the host-owned, flat string configuration map.
// Set always overwrites; there is no delete because merges only ever add or
// replace keys.
type ConfigurationStore interface {
	Get(key string) string
	Lookup(key string) (string, bool)
	Set(key, value string)
	Keys() []string
	Snapshot() map[string]string
	Len() int
}

// PropertiesFileStorage reads and writes whole configuration maps as
// .properties files.
type PropertiesFileStorage interface {
	LoadFromFile(ctx context.Context, fileName string) (map[string]string, error)
	SaveToFile(ctx context.Context, fileName string, values map[string]string) error
	WriteTo(ctx context.Context, w io.Writer, values map[string]string) error
}
