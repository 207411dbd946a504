package node

// Node is a value of type T at a location in a document tree, or the
// recorded absence of one. The zero value is a Missing root node.
type Node[T any] struct {
	loc     *loc
	value   T
	present bool
}

// loc is an immutable location chain. A nil *loc is the root. Nodes
// derived from one another share the chain, so rendering a path is a
// walk back to the root and nothing else.
type loc struct {
	parent *loc
	nav    Nav
}

// Root returns a Present node holding v at the root location.
func Root[T any](v T) Node[T] {
	return Node[T]{value: v, present: true}
}

// MissingRoot returns a Missing node at the root location.
func MissingRoot[T any]() Node[T] {
	return Node[T]{}
}

// Child returns a Present node holding v one step below parent.
func Child[T, P any](parent Node[P], nav Nav, v T) Node[T] {
	return Node[T]{loc: childLoc(parent.loc, nav), value: v, present: true}
}

// MissingChild returns a Missing node one step below parent, recording
// where a value was looked for and not found.
func MissingChild[T, P any](parent Node[P], nav Nav) Node[T] {
	return Node[T]{loc: childLoc(parent.loc, nav)}
}

// At returns a Present node holding v at the same location as ref. The
// value type may differ from ref's.
func At[T, P any](ref Node[P], v T) Node[T] {
	return Node[T]{loc: ref.loc, value: v, present: true}
}

// MissingAt returns a Missing node at the same location as ref.
func MissingAt[T, P any](ref Node[P]) Node[T] {
	return Node[T]{loc: ref.loc}
}

func childLoc(parent *loc, nav Nav) *loc {
	if nav.IsRoot() {
		panic("node: child step must be a key or an index")
	}
	return &loc{parent: parent, nav: nav}
}

// WithValue returns a Present node holding v at n's location. It works
// on Missing nodes too, which is how defaults materialize.
func (n Node[T]) WithValue(v T) Node[T] {
	return Node[T]{loc: n.loc, value: v, present: true}
}

func (n Node[T]) IsPresent() bool {
	return n.present
}

func (n Node[T]) IsMissing() bool {
	return !n.present
}

// Value returns the node's value. The second result is false when the
// node is Missing, in which case the first is T's zero value.
func (n Node[T]) Value() (T, bool) {
	return n.value, n.present
}

// Path renders the node's location by walking the parent chain.
//
//   - root node: ""
//   - object field "a" below the root: ".a"
//   - array element 0 below that: ".a[0]"
func (n Node[T]) Path() string {
	return n.loc.path()
}

func (l *loc) path() string {
	if l == nil {
		return ""
	}
	return l.parent.path() + l.nav.String()
}
