package source

import (
	"encoding/json"
	"fmt"
	"math"
)

// Normalize canonicalizes decoder output so converters see one value
// vocabulary whatever the input format. Map keys become strings,
// integers land in int64 when they fit, other numbers in float64, and
// a json.Number survives only when it fits neither. Byte strings from
// CBOR stay []byte.
func Normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, ev := range x {
			x[k] = Normalize(ev)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, ev := range x {
			m[keyString(k)] = Normalize(ev)
		}
		return m
	case []any:
		for i, ev := range x {
			x[i] = Normalize(ev)
		}
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return normUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return normUint(x)
	case float32:
		return float64(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x
	default:
		return v
	}
}

func normUint(x uint64) any {
	if x <= math.MaxInt64 {
		return int64(x)
	}
	return x
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}
