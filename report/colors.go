package report

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Part identifies a piece of rendered output.
type Part int

const (
	PathPart Part = iota
	ExpectedPart
	ActualPart
	MessagePart
	InsertPart
	DeletePart
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Part]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Part]func(string, ...any) string{},
	}
	colors.Map[PathPart] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ExpectedPart] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ActualPart] = color.RGB(196, 64, 64).SprintfFunc()
	colors.Map[MessagePart] = color.RGB(128, 128, 128).SprintfFunc()
	colors.Map[InsertPart] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[DeletePart] = color.RGB(196, 64, 64).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(p Part) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[p]
	if f == nil {
		return c.Default
	}
	return f
}

// TermColors returns the default scheme when w is a terminal and nil
// otherwise, which Render treats as plain output.
func TermColors(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}
