package source

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "int", in: int(3), want: int64(3)},
		{name: "uint32", in: uint32(9), want: int64(9)},
		{name: "uint64 in range", in: uint64(7), want: int64(7)},
		{name: "uint64 overflow", in: uint64(math.MaxUint64), want: uint64(math.MaxUint64)},
		{name: "float32", in: float32(2), want: float64(2)},
		{name: "json int", in: json.Number("12"), want: int64(12)},
		{name: "json float", in: json.Number("1.5"), want: 1.5},
		{name: "string", in: "s", want: "s"},
		{name: "bytes", in: []byte{1, 2}, want: []byte{1, 2}},
		{name: "nil", in: nil, want: nil},
		{
			name: "any keyed map",
			in:   map[any]any{1: "a", "b": uint64(2)},
			want: map[string]any{"1": "a", "b": int64(2)},
		},
		{
			name: "nested",
			in:   map[string]any{"xs": []any{uint64(1), map[any]any{"k": float32(1)}}},
			want: map[string]any{"xs": []any{int64(1), map[string]any{"k": float64(1)}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
