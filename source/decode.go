package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/signadot/reshape/debug"
)

// Decode parses data as f and returns the normalized document.
func Decode(data []byte, f Format) (any, error) {
	if debug.Source() {
		debug.Logf("decode %d bytes as %s\n", len(data), f)
	}
	switch f {
	case JSONFormat:
		return decodeJSON(data)
	case JSONCFormat:
		return decodeJSON(jsonc.ToJSON(data))
	case YAMLFormat:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return Normalize(v), nil
	case CBORFormat:
		var v any
		if err := cbor.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode cbor: %w", err)
		}
		return Normalize(v), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, int(f))
	}
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	var tail any
	if err := dec.Decode(&tail); err != io.EOF {
		return nil, fmt.Errorf("decode json: trailing data")
	}
	return Normalize(v), nil
}

// DecodeFile reads and decodes path, picking the format from its
// extension.
func DecodeFile(path string) (any, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}

// Sniff guesses the format of data: binary input reads as CBOR, a
// leading brace or bracket as JSONC (a superset of JSON), anything
// else as YAML.
func Sniff(data []byte) Format {
	if !utf8.Valid(data) {
		return CBORFormat
	}
	trim := bytes.TrimLeft(data, " \t\r\n")
	if len(trim) > 0 {
		switch trim[0] {
		case '{', '[':
			return JSONCFormat
		}
	}
	return YAMLFormat
}
