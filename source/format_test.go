package source

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "y", want: YAMLFormat},
		{in: "yaml", want: YAMLFormat},
		{in: "yml", want: YAMLFormat},
		{in: "jsonc", want: JSONCFormat},
		{in: "c", want: CBORFormat},
		{in: "cbor", want: CBORFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormatBad(t *testing.T) {
	_, err := ParseFormat("xml")
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(%q) error = %v, want ErrBadFormat", "xml", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error = %v", int(f), err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", d, err)
		}
		if back != f {
			t.Errorf("UnmarshalText(%q) = %v, want %v", d, back, f)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "a/b.json", want: JSONFormat},
		{path: "b.YAML", want: YAMLFormat},
		{path: "b.yml", want: YAMLFormat},
		{path: "cfg.jsonc", want: JSONCFormat},
		{path: "snap.cbor", want: CBORFormat},
		{path: "noext", wantErr: true},
		{path: "a.txt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSuffixRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := FormatForPath("x" + f.Suffix())
		if err != nil {
			t.Fatalf("FormatForPath(%q) error = %v", "x"+f.Suffix(), err)
		}
		if got != f {
			t.Errorf("FormatForPath(x%s) = %v, want %v", f.Suffix(), got, f)
		}
	}
}
