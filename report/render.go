package report

import (
	"fmt"
	"io"

	"github.com/signadot/reshape"
)

type renderer struct {
	colors *Colors
}

type Option func(*renderer)

// WithColors sets the color scheme; nil renders plain.
func WithColors(c *Colors) Option {
	return func(r *renderer) {
		r.colors = c
	}
}

// Render writes one line per error to w. Paths display rooted at "$",
// so an error at the document root reads "$: ..." and a nested one
// "$.items[1].name: ...".
func Render(w io.Writer, errs []reshape.Error, opts ...Option) error {
	r := &renderer{}
	for _, opt := range opts {
		opt(r)
	}
	for _, e := range errs {
		if _, err := io.WriteString(w, r.line(e)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) line(e reshape.Error) string {
	c := r.colors
	path := c.Get(PathPart)("$" + e.Path)
	switch {
	case e.Message != "":
		return path + ": " + c.Get(MessagePart)(e.Message)
	case e.Missing:
		return path + ": expected " + c.Get(ExpectedPart)(e.Expected) + ", found nothing"
	default:
		actual := fmt.Sprintf("%v", e.Actual)
		return path + ": expected " + c.Get(ExpectedPart)(e.Expected) +
			", got " + c.Get(ActualPart)(actual)
	}
}
