package reshape

// Result is the outcome of a conversion step: a value, or a non-empty
// list of Errors, never both. The zero value is a success holding T's
// zero value; use Success and Failure to build Results.
type Result[T any] struct {
	value T
	errs  []Error
}

// Success returns the Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns the Result carrying errs. It panics when called with
// no errors, since a failure with nothing to report is a bug in the
// converter that built it.
func Failure[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		panic("reshape: Failure with no errors")
	}
	return Result[T]{errs: errs}
}

// Ok reports whether the Result is a success.
func (r Result[T]) Ok() bool {
	return r.errs == nil
}

// Value returns the held value, T's zero value for failures.
func (r Result[T]) Value() T {
	return r.value
}

// Errors returns the recorded failures, nil for successes.
func (r Result[T]) Errors() []Error {
	return r.errs
}
