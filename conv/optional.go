package conv

import (
	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// Optional makes absence acceptable: a Missing input yields a nil
// pointer, a Present input yields a pointer to c's output. Present
// inputs that fail c still fail.
func Optional[T any](c reshape.Converter[T, any]) reshape.Converter[*T, any] {
	return reshape.ConverterFunc[*T, any](func(n node.Node[any]) reshape.Result[node.Node[*T]] {
		if n.IsMissing() {
			return reshape.Success(node.At[*T](n, nil))
		}
		r := c.ConvertNode(n)
		if !r.Ok() {
			return reshape.Failure[node.Node[*T]](r.Errors()...)
		}
		out := r.Value()
		v, _ := out.Value()
		return reshape.Success(node.At(out, &v))
	})
}
