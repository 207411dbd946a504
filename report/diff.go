package report

import (
	"encoding/json"
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff between the pretty printed JSON forms of
// before and after. Removed lines are prefixed "-", added lines "+",
// shared lines a space.
func Diff(before, after any, opts ...Option) (string, error) {
	r := &renderer{}
	for _, opt := range opts {
		opt(r)
	}
	fromD, err := marshalPretty(before)
	if err != nil {
		return "", err
	}
	toD, err := marshalPretty(after)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(fromD, toD)
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(b, r.colors.Get(DeletePart), "-", d.Text)
		case diffpatch.DiffInsert:
			writeLines(b, r.colors.Get(InsertPart), "+", d.Text)
		case diffpatch.DiffEqual:
			writeLines(b, colorDefault, " ", d.Text)
		}
	}
	return b.String(), nil
}

func writeLines(b *strings.Builder, col func(string, ...any) string, prefix, text string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		b.WriteString(col(prefix + " " + line))
		b.WriteByte('\n')
	}
}

func marshalPretty(v any) (string, error) {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode for diff: %w", err)
	}
	return string(d) + "\n", nil
}
