package conv

import (
	"encoding/json"
	"testing"

	"github.com/signadot/reshape"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{name: "float64", in: float64(1.5), want: 1.5},
		{name: "float32", in: float32(2), want: 2},
		{name: "int", in: int(7), want: 7},
		{name: "int64", in: int64(-3), want: -3},
		{name: "uint16", in: uint16(9), want: 9},
		{name: "json number", in: json.Number("102.5"), want: 102.5},
		{name: "string", in: "1.5", wantErr: true},
		{name: "bool", in: true, wantErr: true},
		{name: "null", in: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reshape.Convert(Number(), tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Convert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int64
		wantErr bool
	}{
		{name: "int", in: int(42), want: 42},
		{name: "int64", in: int64(-1), want: -1},
		{name: "whole float", in: float64(3), want: 3},
		{name: "fractional float", in: float64(3.5), wantErr: true},
		{name: "json int", in: json.Number("7"), want: 7},
		{name: "json whole float", in: json.Number("7.0"), want: 7},
		{name: "json fractional", in: json.Number("7.5"), wantErr: true},
		{name: "uint64 in range", in: uint64(10), want: 10},
		{name: "uint64 overflow", in: uint64(1 << 63), wantErr: true},
		{name: "string", in: "42", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reshape.Convert(Int(), tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Convert() = %v, want %v", got, tt.want)
			}
		})
	}
}
