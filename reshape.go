package reshape

import (
	"github.com/signadot/reshape/node"
)

// Converter turns a node holding an In into a node holding an Out, or
// explains in the Result why it cannot. Implementations must not
// retain or mutate the argument node; a Converter built once may be
// used concurrently.
type Converter[Out, In any] interface {
	ConvertNode(n node.Node[In]) Result[node.Node[Out]]
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc[Out, In any] func(n node.Node[In]) Result[node.Node[Out]]

func (f ConverterFunc[Out, In]) ConvertNode(n node.Node[In]) Result[node.Node[Out]] {
	return f(n)
}

// Convert runs c on raw at the root location and returns the converted
// value. On failure the error is a *ConversionError carrying every
// recorded Error.
func Convert[Out, In any](c Converter[Out, In], raw In) (Out, error) {
	res := TryConvert(c, raw)
	if !res.Ok() {
		var zero Out
		return zero, &ConversionError{Errors: res.Errors()}
	}
	return res.Value(), nil
}

// TryConvert runs c on raw at the root location, reporting failures in
// the Result instead of as an error.
func TryConvert[Out, In any](c Converter[Out, In], raw In) Result[Out] {
	res := c.ConvertNode(node.Root(raw))
	if !res.Ok() {
		return Failure[Out](res.Errors()...)
	}
	v, _ := res.Value().Value()
	return Success(v)
}
