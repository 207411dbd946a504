package conv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// Literal accepts exactly want, compared against the decoded value as
// is. Anything else fails, including the same number decoded into a
// different representation.
func Literal[T comparable](want T) reshape.Converter[T, any] {
	name := literalName(want)
	return reshape.ConverterFunc[T, any](func(n node.Node[any]) reshape.Result[node.Node[T]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[T]](reshape.ErrorAt(n, name))
		}
		tv, ok := v.(T)
		if !ok || tv != want {
			return reshape.Failure[node.Node[T]](reshape.ErrorAt(n, name))
		}
		return reshape.Success(node.At(n, tv))
	})
}

// OneOf accepts any of the given values, compared like Literal.
func OneOf[T comparable](vs ...T) reshape.Converter[T, any] {
	if len(vs) == 0 {
		panic("conv: OneOf with no values")
	}
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = literalName(v)
	}
	name := strings.Join(names, "|")
	return reshape.ConverterFunc[T, any](func(n node.Node[any]) reshape.Result[node.Node[T]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[T]](reshape.ErrorAt(n, name))
		}
		tv, ok := v.(T)
		if ok {
			for _, want := range vs {
				if tv == want {
					return reshape.Success(node.At(n, tv))
				}
			}
		}
		return reshape.Failure[node.Node[T]](reshape.ErrorAt(n, name))
	})
}

func literalName(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}
