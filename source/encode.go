package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

// Encode renders v in f. JSONC reads as a superset of JSON, so it
// encodes as plain JSON.
func Encode(v any, f Format) ([]byte, error) {
	switch f {
	case JSONFormat, JSONCFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(d, '\n'), nil
	case YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return d, nil
	case CBORFormat:
		d, err := cbor.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode cbor: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, int(f))
	}
}

// EncodeTo writes v to w in f.
func EncodeTo(w io.Writer, v any, f Format) error {
	d, err := Encode(v, f)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
