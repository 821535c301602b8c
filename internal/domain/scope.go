package domain

import "strings"

// Scope selects which level of the hierarchy an analytics query targets.
type Scope string

const (
	ScopeBatch  Scope = "batch"
	ScopePod    Scope = "pod"
	ScopeFellow Scope = "fellow"
)

// ParseScope validates a scope coming from a request.
func ParseScope(raw string) (Scope, error) {
	switch s := Scope(strings.TrimSpace(raw)); s {
	case ScopeBatch, ScopePod, ScopeFellow:
		return s, nil
	default:
		return "", ErrInvalidScope
	}
}
