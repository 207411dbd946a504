package node

import "testing"

func TestNavString(t *testing.T) {
	tests := []struct {
		name string
		nav  Nav
		want string
	}{
		{name: "root", nav: Nav{}, want: ""},
		{name: "plain key", nav: Key("name"), want: ".name"},
		{name: "dashed key", nav: Key("first-name"), want: ".first-name"},
		{name: "dotted key", nav: Key("a.b"), want: `."a.b"`},
		{name: "spaced key", nav: Key("first name"), want: `."first name"`},
		{name: "empty key", nav: Key(""), want: `.""`},
		{name: "index", nav: Index(3), want: "[3]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.nav.String(); got != tt.want {
				t.Errorf("Nav.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	root := Root[any](nil)
	items := Child[any](root, Key("items"), []any{})
	second := Child[any](items, Index(1), map[string]any{})
	name := Child[any](second, Key("name"), "x")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "root", path: root.Path(), want: ""},
		{name: "field", path: items.Path(), want: ".items"},
		{name: "field then index", path: second.Path(), want: ".items[1]"},
		{name: "field index field", path: name.Path(), want: ".items[1].name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.path != tt.want {
				t.Errorf("Path() = %q, want %q", tt.path, tt.want)
			}
		})
	}
}

func TestPathQuotedField(t *testing.T) {
	root := Root[any](nil)
	odd := Child[any](root, Key("odd key"), nil)
	under := Child[any](odd, Index(0), nil)
	if got := under.Path(); got != `."odd key"[0]` {
		t.Errorf("Path() = %q, want %q", got, `."odd key"[0]`)
	}
}
