// Package node locates values inside a document tree.
//
// A Node pairs a value with the place it was found, or records that
// nothing was found there. The place is a chain of Nav steps back to
// the document root, kept only so that the location can be rendered
// as a path string when something goes wrong. Nodes never point at
// their children and never own the document; they are cheap labels
// handed from one conversion step to the next.
//
// Paths render as "" for the root, ".field" for object fields and
// "[i]" for array elements, so a node three steps down may report
// its location as
//
//	.items[1].name
//
// Nodes are immutable. Deriving a node with WithValue or At yields a
// new node at the same location, which is how a conversion step emits
// its output without losing track of where the input came from.
package node
