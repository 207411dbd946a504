package conv

import (
	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// String accepts exactly a string value.
func String() reshape.Converter[string, any] {
	return reshape.ConverterFunc[string, any](func(n node.Node[any]) reshape.Result[node.Node[string]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[string]](reshape.ErrorAt(n, "string"))
		}
		s, ok := v.(string)
		if !ok {
			return reshape.Failure[node.Node[string]](reshape.ErrorAt(n, "string"))
		}
		return reshape.Success(node.At(n, s))
	})
}

// Bool accepts exactly a bool value.
func Bool() reshape.Converter[bool, any] {
	return reshape.ConverterFunc[bool, any](func(n node.Node[any]) reshape.Result[node.Node[bool]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[bool]](reshape.ErrorAt(n, "bool"))
		}
		b, ok := v.(bool)
		if !ok {
			return reshape.Failure[node.Node[bool]](reshape.ErrorAt(n, "bool"))
		}
		return reshape.Success(node.At(n, b))
	})
}

// Null accepts exactly null and yields nil.
func Null() reshape.Converter[any, any] {
	return reshape.ConverterFunc[any, any](func(n node.Node[any]) reshape.Result[node.Node[any]] {
		v, ok := n.Value()
		if !ok || v != nil {
			return reshape.Failure[node.Node[any]](reshape.ErrorAt(n, "null"))
		}
		return reshape.Success(n)
	})
}

// Any accepts any Present value unchanged. Only absence fails.
func Any() reshape.Converter[any, any] {
	return reshape.ConverterFunc[any, any](func(n node.Node[any]) reshape.Result[node.Node[any]] {
		if n.IsMissing() {
			return reshape.Failure[node.Node[any]](reshape.ErrorAt(n, "a value"))
		}
		return reshape.Success(n)
	})
}
