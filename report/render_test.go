package report

import (
	"bytes"
	"testing"

	"github.com/signadot/reshape"
)

func TestRenderPlain(t *testing.T) {
	errs := []reshape.Error{
		{Path: "", Expected: "string", Actual: 5},
		{Path: ".value", Expected: "string", Missing: true},
		{Path: ".n", Expected: "int in a string", Message: "int in a string: bad digit"},
	}
	b := &bytes.Buffer{}
	if err := Render(b, errs); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "$: expected string, got 5\n" +
		"$.value: expected string, found nothing\n" +
		"$.n: int in a string: bad digit\n"
	if got := b.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCustomColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Part]func(string, ...any) string{
			PathPart: func(v string, _ ...any) string { return "<" + v + ">" },
		},
	}
	b := &bytes.Buffer{}
	errs := []reshape.Error{{Path: ".x", Expected: "string", Actual: 1}}
	if err := Render(b, errs, WithColors(c)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<$.x>: expected string, got 1\n"
	if got := b.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderNothing(t *testing.T) {
	b := &bytes.Buffer{}
	if err := Render(b, nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Render(nil) wrote %q, want nothing", b.String())
	}
}

func TestTermColorsNonFile(t *testing.T) {
	if c := TermColors(&bytes.Buffer{}); c != nil {
		t.Errorf("TermColors(buffer) = %v, want nil", c)
	}
}
