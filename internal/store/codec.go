package store

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/magiconair/properties"
)

// DecodeProperties reads r to the end and parses it as UTF-8 .properties
// text: key=value, key:value or key value lines, # and ! comments, backslash
// escapes and line continuations. ${...} references are kept verbatim.
func DecodeProperties(r io.Reader) (map[string]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading stream: %w", ErrDecodeProperties, err)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeProperties, err)
	}

	values := make(map[string]string, p.Len())
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		values[key] = v
	}

	return values, nil
}

// EncodeProperties writes values to w as UTF-8 .properties text with keys in
// lexical order.
func EncodeProperties(w io.Writer, values map[string]string) error {
	p := properties.NewProperties()
	p.DisableExpansion = true

	for _, key := range slices.Sorted(maps.Keys(values)) {
		if _, _, err := p.Set(key, values[key]); err != nil {
			return fmt.Errorf("%w: key %q: %w", ErrEncodeProperties, key, err)
		}
	}

	if _, err := p.Write(w, properties.UTF8); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeProperties, err)
	}

	return nil
}
