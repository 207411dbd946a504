package conv

import (
	"reflect"
	"testing"

	"github.com/signadot/reshape"
)

func TestMapOf(t *testing.T) {
	in := map[string]any{"a": 1, "b": 2.5}
	got, err := reshape.Convert(MapOf(Number()), any(in))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := map[string]float64{"a": 1, "b": 2.5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Convert() = %v, want %v", got, want)
	}
}

func TestMapOfErrorsInKeyOrder(t *testing.T) {
	in := map[string]any{"z": "no", "a": "also no", "m": 1}
	res := reshape.TryConvert(MapOf(Number()), any(in))
	if res.Ok() {
		t.Fatalf("TryConvert() Ok = true, want false")
	}
	errs := res.Errors()
	if len(errs) != 2 {
		t.Fatalf("Errors len = %d, want 2", len(errs))
	}
	if errs[0].Path != ".a" || errs[1].Path != ".z" {
		t.Errorf("error paths = %q, %q, want .a, .z in key order", errs[0].Path, errs[1].Path)
	}
}

func TestMapOfRejectsNonObject(t *testing.T) {
	res := reshape.TryConvert(MapOf(Number()), any(5))
	if res.Ok() {
		t.Fatalf("TryConvert() Ok = true, want false")
	}
	if got := res.Errors()[0].Expected; got != "object" {
		t.Errorf("Expected = %q, want %q", got, "object")
	}
}
