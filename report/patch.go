package report

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch turning before into
// after, as JSON. Two equal documents yield the empty patch "{}".
func MergePatch(before, after any) ([]byte, error) {
	fromD, err := json.Marshal(before)
	if err != nil {
		return nil, fmt.Errorf("encode for patch: %w", err)
	}
	toD, err := json.Marshal(after)
	if err != nil {
		return nil, fmt.Errorf("encode for patch: %w", err)
	}
	return jsonpatch.CreateMergePatch(fromD, toD)
}
