// Package source decodes documents into plain Go values ready for
// conversion.
//
// JSON, JSONC, YAML and CBOR all land in the same vocabulary:
// map[string]any, []any, string, bool, int64, float64 and nil, with
// []byte preserved from CBOR byte strings. Format selection is
// explicit, by file extension, or by a best-effort Sniff.
package source
