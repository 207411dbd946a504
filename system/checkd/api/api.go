// Package api defines the wire types of the checkd protocol.
//
// checkd speaks JSON-RPC 2.0. Conversion failures are ordinary results
// carrying issues, not protocol errors; protocol errors are reserved
// for malformed requests.
package api

import (
	"encoding/json"

	"github.com/signadot/reshape"
)

// Version of the protocol, reported by reshape/ping.
const Version = "0.1.0"

// Method names.
const (
	MethodPing  = "reshape/ping"
	MethodCheck = "reshape/check"
	MethodApply = "reshape/apply"
)

// CheckParams ask whether Doc fits the shape Sample implies.
type CheckParams struct {
	Sample any `json:"sample"`
	Doc    any `json:"doc"`
}

// Issue is one conversion failure on the wire.
type Issue struct {
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Actual   any    `json:"actual,omitempty"`
	Missing  bool   `json:"missing,omitempty"`
	Message  string `json:"message,omitempty"`
}

type CheckResult struct {
	OK     bool    `json:"ok"`
	Issues []Issue `json:"issues,omitempty"`
}

// ApplyParams ask for Doc converted to the shape Sample implies.
type ApplyParams struct {
	Sample any `json:"sample"`
	Doc    any `json:"doc"`
	// Patch also returns the merge patch from the input document to
	// the converted one.
	Patch bool `json:"patch,omitempty"`
}

type ApplyResult struct {
	OK     bool            `json:"ok"`
	Doc    any             `json:"doc,omitempty"`
	Patch  json.RawMessage `json:"patch,omitempty"`
	Issues []Issue         `json:"issues,omitempty"`
}

type PingResult struct {
	Version string `json:"version"`
}

// IssuesFromErrors maps recorded conversion errors to wire issues.
func IssuesFromErrors(errs []reshape.Error) []Issue {
	issues := make([]Issue, len(errs))
	for i, e := range errs {
		issues[i] = Issue{
			Path:     e.Path,
			Expected: e.Expected,
			Actual:   e.Actual,
			Missing:  e.Missing,
			Message:  e.Message,
		}
	}
	return issues
}
