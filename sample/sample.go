// Package sample infers converters from example documents.
//
// Given one well-shaped document, Infer builds the converter that
// checks other documents against its shape: scalars ask for a value
// of their kind, objects ask for their keys field by field, arrays
// for a sequence of their first element's shape. Nullability and
// defaults are not guessed; callers layer those on with reshape.Or
// and reshape.Default where the sample alone cannot say.
package sample

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/conv"
	"github.com/signadot/reshape/node"
)

// Infer builds the converter the sample document implies.
func Infer(sample any) reshape.Converter[any, any] {
	switch x := sample.(type) {
	case nil:
		return conv.Null()
	case string:
		return reshape.AsAny(conv.String())
	case bool:
		return reshape.AsAny(conv.Bool())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return reshape.AsAny(conv.Int())
	case float32, float64:
		return reshape.AsAny(conv.Number())
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return reshape.AsAny(conv.Int())
		}
		return reshape.AsAny(conv.Number())
	case []byte:
		return reshape.AsAny(bytes())
	case map[string]any:
		fields := make([]conv.Field, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			fields = append(fields, conv.F(k, Infer(x[k])))
		}
		return reshape.AsAny(conv.Object(fields...))
	case []any:
		if len(x) == 0 {
			return reshape.AsAny(conv.Slice(conv.Any()))
		}
		return reshape.AsAny(conv.Slice(Infer(x[0])))
	default:
		return conv.Any()
	}
}

func bytes() reshape.Converter[[]byte, any] {
	return reshape.ConverterFunc[[]byte, any](func(n node.Node[any]) reshape.Result[node.Node[[]byte]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[[]byte]](reshape.ErrorAt(n, "bytes"))
		}
		b, ok := v.([]byte)
		if !ok {
			return reshape.Failure[node.Node[[]byte]](reshape.ErrorAt(n, "bytes"))
		}
		return reshape.Success(node.At(n, b))
	})
}
