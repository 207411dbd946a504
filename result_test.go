package reshape

import "testing"

func TestSuccess(t *testing.T) {
	r := Success(42)
	if !r.Ok() {
		t.Errorf("Success().Ok() = false, want true")
	}
	if got := r.Value(); got != 42 {
		t.Errorf("Success().Value() = %d, want 42", got)
	}
	if errs := r.Errors(); errs != nil {
		t.Errorf("Success().Errors() = %v, want nil", errs)
	}
}

func TestFailure(t *testing.T) {
	e := Error{Path: ".x", Expected: "string"}
	r := Failure[int](e)
	if r.Ok() {
		t.Errorf("Failure().Ok() = true, want false")
	}
	errs := r.Errors()
	if len(errs) != 1 {
		t.Fatalf("Failure().Errors() len = %d, want 1", len(errs))
	}
	if errs[0].Path != ".x" || errs[0].Expected != "string" {
		t.Errorf("Failure().Errors()[0] = %+v, want %+v", errs[0], e)
	}
}

func TestFailureWithoutErrorsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Failure() with no errors did not panic")
		}
	}()
	Failure[int]()
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "root path",
			err:  Error{Expected: "string", Actual: 5},
			want: "conversion error: expected string, got 5",
		},
		{
			name: "nested path",
			err:  Error{Path: ".items[1]", Expected: "number", Actual: "x"},
			want: "conversion error at .items[1]: expected number, got x",
		},
		{
			name: "missing",
			err:  Error{Path: ".value", Expected: "string", Missing: true},
			want: "conversion error at .value: expected string, found nothing",
		},
		{
			name: "message override",
			err:  Error{Path: ".n", Expected: "int in decimal", Message: "int in decimal: bad digit 'x'"},
			want: "conversion error at .n: int in decimal: bad digit 'x'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConversionErrorMessage(t *testing.T) {
	one := &ConversionError{Errors: []Error{{Expected: "string", Actual: 5}}}
	if got, want := one.Error(), "conversion error: expected string, got 5"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	two := &ConversionError{Errors: []Error{
		{Path: ".a", Expected: "string", Actual: 1},
		{Path: ".b", Expected: "bool", Missing: true},
	}}
	want := "2 conversion errors:\n\tconversion error at .a: expected string, got 1\n\tconversion error at .b: expected bool, found nothing"
	if got := two.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestConversionErrorUnwrap(t *testing.T) {
	ce := &ConversionError{Errors: []Error{
		{Path: ".a", Expected: "string"},
		{Path: ".b", Expected: "bool"},
	}}
	errs := ce.Unwrap()
	if len(errs) != 2 {
		t.Fatalf("Unwrap() len = %d, want 2", len(errs))
	}
	for i, err := range errs {
		if _, ok := err.(Error); !ok {
			t.Errorf("Unwrap()[%d] type = %T, want Error", i, err)
		}
	}
}
