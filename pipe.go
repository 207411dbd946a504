package reshape

import (
	"fmt"

	"github.com/signadot/reshape/debug"
	"github.com/signadot/reshape/node"
)

// Pipe feeds first's output node to then. A failure in first
// short-circuits the chain; then never runs on a failed input.
func Pipe[B, A, In any](first Converter[A, In], then Converter[B, A]) Converter[B, In] {
	return ConverterFunc[B, In](func(n node.Node[In]) Result[node.Node[B]] {
		r := first.ConvertNode(n)
		if !r.Ok() {
			return Failure[node.Node[B]](r.Errors()...)
		}
		return then.ConvertNode(r.Value())
	})
}

// Apply lifts fn into a conversion step named name. The node's value
// is passed to fn; a returned error, or a panic inside fn, becomes a
// single Error at the node's location. Missing inputs fail without
// calling fn.
func Apply[B, A any](name string, fn func(A) (B, error)) Converter[B, A] {
	return ConverterFunc[B, A](func(n node.Node[A]) (res Result[node.Node[B]]) {
		v, ok := n.Value()
		if !ok {
			return Failure[node.Node[B]](ErrorAt(n, name))
		}
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if debug.Convert() {
				debug.Logf("apply %s: recovered %v at %q\n", name, p, n.Path())
			}
			res = Failure[node.Node[B]](Error{
				Path:     n.Path(),
				Expected: name,
				Actual:   v,
				Message:  fmt.Sprintf("%s: panic: %v", name, p),
			})
		}()
		out, err := fn(v)
		if err != nil {
			return Failure[node.Node[B]](Error{
				Path:     n.Path(),
				Expected: name,
				Actual:   v,
				Message:  fmt.Sprintf("%s: %v", name, err),
			})
		}
		return Success(node.At(n, out))
	})
}

// Transform lifts an infallible fn into a conversion step named name.
// Panics inside fn are contained the same way as in Apply.
func Transform[B, A any](name string, fn func(A) B) Converter[B, A] {
	return Apply(name, func(v A) (B, error) {
		return fn(v), nil
	})
}
