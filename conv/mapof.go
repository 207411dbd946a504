package conv

import (
	"maps"
	"slices"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// MapOf converts every value of a map input with val, keeping the
// keys. Keys are visited in sorted order so repeated conversions of
// the same document report failures in the same order.
func MapOf[T any](val reshape.Converter[T, any]) reshape.Converter[map[string]T, any] {
	return reshape.ConverterFunc[map[string]T, any](func(n node.Node[any]) reshape.Result[node.Node[map[string]T]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[map[string]T]](reshape.ErrorAt(n, "object"))
		}
		m, ok := v.(map[string]any)
		if !ok {
			return reshape.Failure[node.Node[map[string]T]](reshape.ErrorAt(n, "object"))
		}
		out := make(map[string]T, len(m))
		var errs []reshape.Error
		for _, k := range slices.Sorted(maps.Keys(m)) {
			r := val.ConvertNode(node.Child[any](n, node.Key(k), m[k]))
			if !r.Ok() {
				errs = append(errs, r.Errors()...)
				continue
			}
			cv, _ := r.Value().Value()
			out[k] = cv
		}
		if errs != nil {
			return reshape.Failure[node.Node[map[string]T]](errs...)
		}
		return reshape.Success(node.At(n, out))
	})
}
