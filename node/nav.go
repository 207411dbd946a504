package node

import (
	"strconv"
	"unicode"
)

// Nav is a single navigation step from a parent location to one of its
// children. The zero value is the root step, which navigates nowhere.
type Nav struct {
	key   string
	index int
	kind  navKind
}

type navKind int

const (
	navRoot navKind = iota
	navKey
	navIndex
)

// Key returns the step selecting the object field name.
func Key(name string) Nav {
	return Nav{key: name, kind: navKey}
}

// Index returns the step selecting the array element at i.
func Index(i int) Nav {
	return Nav{index: i, kind: navIndex}
}

func (n Nav) IsRoot() bool {
	return n.kind == navRoot
}

// String renders the step as a path segment: ".name" for fields, "[i]"
// for indices, "" for the root. Field names that would not read back
// unambiguously are quoted.
func (n Nav) String() string {
	switch n.kind {
	case navKey:
		if plainKey(n.key) {
			return "." + n.key
		}
		return "." + strconv.Quote(n.key)
	case navIndex:
		return "[" + strconv.Itoa(n.index) + "]"
	default:
		return ""
	}
}

func plainKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			continue
		}
		return false
	}
	return true
}
