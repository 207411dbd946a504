package reshape

import (
	"fmt"
	"strings"

	"github.com/signadot/reshape/node"
)

// Error is a single conversion failure tied to a location in the input
// document.
type Error struct {
	// Path locates the failing node, "" for the root.
	Path string
	// Expected names the shape or step that was not satisfied, such as
	// "string" or "int in decimal".
	Expected string
	// Actual is the value found at Path. It is nil when Missing.
	Actual any
	// Missing reports that no value was present at Path.
	Missing bool
	// Message overrides the expected/actual phrasing when a step has
	// something more precise to say.
	Message string
}

func (e Error) Error() string {
	msg := e.Message
	if msg == "" {
		if e.Missing {
			msg = fmt.Sprintf("expected %s, found nothing", e.Expected)
		} else {
			msg = fmt.Sprintf("expected %s, got %v", e.Expected, e.Actual)
		}
	}
	if e.Path != "" {
		return fmt.Sprintf("conversion error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("conversion error: %s", msg)
}

// ErrorAt builds the Error describing a failed expectation at n's
// location, capturing the observed value or its absence.
func ErrorAt[T any](n node.Node[T], expected string) Error {
	if v, ok := n.Value(); ok {
		return Error{Path: n.Path(), Expected: expected, Actual: v}
	}
	return Error{Path: n.Path(), Expected: expected, Missing: true}
}

// ConversionError aggregates every Error recorded by a failed
// conversion, in the order they were found.
type ConversionError struct {
	Errors []Error
}

func (e *ConversionError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "conversion failed"
	case 1:
		return e.Errors[0].Error()
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%d conversion errors:", len(e.Errors))
	for _, ce := range e.Errors {
		b.WriteString("\n\t")
		b.WriteString(ce.Error())
	}
	return b.String()
}

func (e *ConversionError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ce := range e.Errors {
		errs[i] = ce
	}
	return errs
}
