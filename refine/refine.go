package refine

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/node"
)

// Check compiles rule and returns a converter that passes a value
// through untouched when the rule evaluates to true at that value.
// The rule sees the value as "value" and its location as "path".
func Check[T any](rule string) (reshape.Converter[T, T], error) {
	opts := append(exprOpts(), expr.AsBool())
	prg, err := expr.Compile(rule, opts...)
	if err != nil {
		return nil, fmt.Errorf("refine: compile rule %q: %w", rule, err)
	}
	label := fmt.Sprintf("value satisfying %s", rule)
	return reshape.ConverterFunc[T, T](func(n node.Node[T]) reshape.Result[node.Node[T]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[T]](reshape.ErrorAt(n, label))
		}
		res, err := run(prg, v, n.Path())
		if err != nil {
			return reshape.Failure[node.Node[T]](reshape.Error{
				Path:     n.Path(),
				Expected: label,
				Actual:   v,
				Message:  fmt.Sprintf("rule %s: %v", rule, err),
			})
		}
		if pass, _ := res.(bool); !pass {
			return reshape.Failure[node.Node[T]](reshape.ErrorAt(n, label))
		}
		return reshape.Success(n)
	}), nil
}

// MustCheck is Check for rules known good at build time. It panics on
// compile errors.
func MustCheck[T any](rule string) reshape.Converter[T, T] {
	c, err := Check[T](rule)
	if err != nil {
		panic(err)
	}
	return c
}

// Compute compiles src and returns a converter yielding the
// expression's result, with the input bound as in Check.
func Compute[T any](src string) (reshape.Converter[any, T], error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("refine: compile %q: %w", src, err)
	}
	label := fmt.Sprintf("result of %s", src)
	return reshape.ConverterFunc[any, T](func(n node.Node[T]) reshape.Result[node.Node[any]] {
		v, ok := n.Value()
		if !ok {
			return reshape.Failure[node.Node[any]](reshape.ErrorAt(n, label))
		}
		res, err := run(prg, v, n.Path())
		if err != nil {
			return reshape.Failure[node.Node[any]](reshape.Error{
				Path:     n.Path(),
				Expected: label,
				Actual:   v,
				Message:  fmt.Sprintf("compute %s: %v", src, err),
			})
		}
		return reshape.Success(node.At[any](n, res))
	}), nil
}

// MustCompute is Compute for expressions known good at build time. It
// panics on compile errors.
func MustCompute[T any](src string) reshape.Converter[any, T] {
	c, err := Compute[T](src)
	if err != nil {
		panic(err)
	}
	return c
}

func run(prg *vm.Program, value any, path string) (any, error) {
	return expr.Run(prg, map[string]any{
		"value": value,
		"path":  path,
	})
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
