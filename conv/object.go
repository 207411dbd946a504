package conv

import (
	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// Field pairs an object key with the converter for its value.
type Field struct {
	name string
	conv reshape.Converter[any, any]
}

// F builds the Field converting key name with c.
func F(name string, c reshape.Converter[any, any]) Field {
	return Field{name: name, conv: c}
}

// Object converts a map input field by field, in declaration order.
// An absent key reaches its converter as a Missing child node, which
// is where Default engages. Failures from every field are collected
// before returning. Input keys no Field names are dropped; a field
// whose converter yields a Missing node is left out of the output.
func Object(fields ...Field) reshape.Converter[map[string]any, any] {
	return reshape.ConverterFunc[map[string]any, any](func(n node.Node[any]) reshape.Result[node.Node[map[string]any]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[map[string]any]](reshape.ErrorAt(n, "object"))
		}
		m, ok := v.(map[string]any)
		if !ok {
			return reshape.Failure[node.Node[map[string]any]](reshape.ErrorAt(n, "object"))
		}
		out := make(map[string]any, len(fields))
		var errs []reshape.Error
		for _, f := range fields {
			var child node.Node[any]
			if fv, ok := m[f.name]; ok {
				child = node.Child[any](n, node.Key(f.name), fv)
			} else {
				child = node.MissingChild[any](n, node.Key(f.name))
			}
			r := f.conv.ConvertNode(child)
			if !r.Ok() {
				errs = append(errs, r.Errors()...)
				continue
			}
			if cv, ok := r.Value().Value(); ok {
				out[f.name] = cv
			}
		}
		if errs != nil {
			return reshape.Failure[node.Node[map[string]any]](errs...)
		}
		return reshape.Success(node.At(n, out))
	})
}
