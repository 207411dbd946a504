package conv

import (
	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// Slice converts an array input element by element with elem. Failures
// from every element are collected, each tagged with its index, so a
// bad element never hides the ones after it.
func Slice[T any](elem reshape.Converter[T, any]) reshape.Converter[[]T, any] {
	return reshape.ConverterFunc[[]T, any](func(n node.Node[any]) reshape.Result[node.Node[[]T]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[[]T]](reshape.ErrorAt(n, "array"))
		}
		arr, ok := v.([]any)
		if !ok {
			return reshape.Failure[node.Node[[]T]](reshape.ErrorAt(n, "array"))
		}
		out := make([]T, 0, len(arr))
		var errs []reshape.Error
		for i, ev := range arr {
			r := elem.ConvertNode(node.Child[any](n, node.Index(i), ev))
			if !r.Ok() {
				errs = append(errs, r.Errors()...)
				continue
			}
			cv, _ := r.Value().Value()
			out = append(out, cv)
		}
		if errs != nil {
			return reshape.Failure[node.Node[[]T]](errs...)
		}
		return reshape.Success(node.At(n, out))
	})
}
