package conv

import (
	"encoding/json"
	"math"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// Number accepts any decoded numeric representation and yields it as a
// float64. JSON decoding with number preservation, YAML and CBOR each
// hand back different Go types for the same document; Number smooths
// that over.
func Number() reshape.Converter[float64, any] {
	return reshape.ConverterFunc[float64, any](func(n node.Node[any]) reshape.Result[node.Node[float64]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[float64]](reshape.ErrorAt(n, "number"))
		}
		f, ok := floatValue(v)
		if !ok {
			return reshape.Failure[node.Node[float64]](reshape.ErrorAt(n, "number"))
		}
		return reshape.Success(node.At(n, f))
	})
}

// Int accepts any decoded numeric representation holding an integer
// and yields it as an int64. Fractional values fail.
func Int() reshape.Converter[int64, any] {
	return reshape.ConverterFunc[int64, any](func(n node.Node[any]) reshape.Result[node.Node[int64]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[int64]](reshape.ErrorAt(n, "int"))
		}
		i, ok := intValue(v)
		if !ok {
			return reshape.Failure[node.Node[int64]](reshape.ErrorAt(n, "int"))
		}
		return reshape.Success(node.At(n, i))
	})
}

func floatValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func intValue(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	case float64:
		i := int64(x)
		return i, float64(i) == x
	case float32:
		i := int64(x)
		return i, float32(i) == x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		i := int64(f)
		return i, float64(i) == f
	default:
		return 0, false
	}
}
