// Package main - positional errors for the check command.
//
// Findings carry a file position and, where one helps, a suggestion, so a
// misconfigured build fails with something actionable:
//
//	firmware/init.go:12: second backend registration (stdlock)
//
//	Suggestion: a build may link exactly one backend; remove one of the imports
package main

import "fmt"

// CheckError is a finding with source position context.
type CheckError struct {
	File       string // source file path, "" for module-level findings
	Line       int    // line number, 0 if not positional
	Message    string // human-readable description
	Suggestion string // optional hint for fixing, "" if none
}

// Error implements the error interface.
//
// Format: file:line: message, with the suggestion appended on its own
// paragraph when present. Module-level findings omit the position.
func (e *CheckError) Error() string {
	var result string
	if e.File != "" {
		result = fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	} else {
		result = e.Message
	}
	if e.Suggestion != "" {
		result += fmt.Sprintf("\n\nSuggestion: %s", e.Suggestion)
	}
	return result
}
