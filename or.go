package reshape

import (
	"github.com/signadot/reshape/debug"
	"github.com/signadot/reshape/node"
)

// Or tries each alternative in order against the same input node and
// returns the first success. When every alternative fails, the Result
// carries the union of all their errors, in alternative order, so the
// caller sees why each branch was rejected.
func Or[Out, In any](alts ...Converter[Out, In]) Converter[Out, In] {
	if len(alts) == 0 {
		panic("reshape: Or with no alternatives")
	}
	return ConverterFunc[Out, In](func(n node.Node[In]) Result[node.Node[Out]] {
		var all []Error
		for i, alt := range alts {
			r := alt.ConvertNode(n)
			if r.Ok() {
				return r
			}
			if debug.Or() {
				debug.Logf("or: alternative %d failed at %q: %v\n", i, n.Path(), r.Errors())
			}
			all = append(all, r.Errors()...)
		}
		return Failure[node.Node[Out]](all...)
	})
}

// AsAny erases c's output type so converters with different outputs
// can meet as Or alternatives or Object fields.
func AsAny[Out, In any](c Converter[Out, In]) Converter[any, In] {
	return ConverterFunc[any, In](func(n node.Node[In]) Result[node.Node[any]] {
		r := c.ConvertNode(n)
		if !r.Ok() {
			return Failure[node.Node[any]](r.Errors()...)
		}
		out := r.Value()
		if v, ok := out.Value(); ok {
			return Success(node.At[any](out, v))
		}
		return Success(node.MissingAt[any](out))
	})
}
