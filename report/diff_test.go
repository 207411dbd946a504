package report

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	before := map[string]any{"a": 1, "b": "x"}
	after := map[string]any{"a": 1, "b": "y"}
	out, err := Diff(before, after)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if !strings.Contains(out, `- `) || !strings.Contains(out, `"x"`) {
		t.Errorf("Diff() = %q, want a removed line mentioning x", out)
	}
	if !strings.Contains(out, `+ `) || !strings.Contains(out, `"y"`) {
		t.Errorf("Diff() = %q, want an added line mentioning y", out)
	}
}

func TestDiffEqualDocs(t *testing.T) {
	doc := map[string]any{"a": []any{1, 2}}
	out, err := Diff(doc, doc)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q not marked equal in a no-change diff", line)
		}
	}
}

func TestMergePatch(t *testing.T) {
	before := map[string]any{"a": 1, "b": 2}
	after := map[string]any{"a": 1, "b": 3, "c": 4}
	d, err := MergePatch(before, after)
	if err != nil {
		t.Fatalf("MergePatch() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(d, &got); err != nil {
		t.Fatalf("Unmarshal(%q) error = %v", d, err)
	}
	want := map[string]any{"b": float64(3), "c": float64(4)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergePatch() = %v, want %v", got, want)
	}
}

func TestMergePatchNoChange(t *testing.T) {
	doc := map[string]any{"a": 1}
	d, err := MergePatch(doc, doc)
	if err != nil {
		t.Fatalf("MergePatch() error = %v", err)
	}
	if string(d) != "{}" {
		t.Errorf("MergePatch() = %q, want {}", d)
	}
}

func TestMergePatchUnencodable(t *testing.T) {
	if _, err := MergePatch(make(chan int), nil); err == nil {
		t.Errorf("MergePatch(chan) error = nil, want encode error")
	}
}
