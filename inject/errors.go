package inject

import (
	"fmt"
	"strings"
)

// ResolveError is the single error kind reported by the resolution engine.
// It covers unregistered names, empty names, circular resolution paths and
// lifetime-escalation violations.
//
// Path holds the resolution chain at the point of failure, root first, with
// the offending entries bracketed: "a -> [b] -> c -> [b]". It is empty for
// failures that happen before any resolution has started.
type ResolveError struct {
	Scope  string   // scope debug label, empty when the scope has none
	Path   []string // resolution chain, offenders bracketed
	Reason string
}

func (e *ResolveError) Error() string {
	msg := "inject: " + e.Reason
	if len(e.Path) > 0 {
		msg += ": " + strings.Join(e.Path, " -> ")
	}
	if e.Scope != "" {
		msg += fmt.Sprintf(" (scope %s)", e.Scope)
	}
	return msg
}

// trace renders the active stack plus the name being requested. Stack
// indices present in marks are bracketed; the requested name is bracketed
// when markLast is set.
func trace(stack []string, marks map[int]bool, requested string, markLast bool) []string {
	path := make([]string, 0, len(stack)+1)
	for i, n := range stack {
		if marks[i] {
			n = "[" + n + "]"
		}
		path = append(path, n)
	}
	if markLast {
		requested = "[" + requested + "]"
	}
	return append(path, requested)
}
