// Package action models combat actions and validated, immutable sets of them.
package action

import (
	"fmt"
)

// Code identifies a combat action.
type Code string

// Scope tags the kind of combat an action can be used in.
type Scope int

const (
	// ScopeAny actions are usable in melee and ranged combat.
	ScopeAny Scope = iota
	// ScopeMeleeOnly actions are usable in melee only.
	ScopeMeleeOnly
	// ScopeRangedOnly actions are usable in ranged combat only.
	ScopeRangedOnly
)

// String returns the canonical name of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeAny:
		return "any"
	case ScopeMeleeOnly:
		return "melee"
	case ScopeRangedOnly:
		return "ranged"
	default:
		return "unknown"
	}
}

// ParseScope converts a canonical name to a Scope.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", "any":
		return ScopeAny, nil
	case "melee":
		return ScopeMeleeOnly, nil
	case "ranged":
		return ScopeRangedOnly, nil
	default:
		return ScopeAny, fmt.Errorf("action: unknown scope %q (want any, melee or ranged)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Action is an immutable action value: its code plus its scope tag.
type Action struct {
	Code  Code
	Scope Scope
}

// String returns the action code.
func (a Action) String() string { return string(a.Code) }

// Compatibility decides whether two actions may be chosen together.
type Compatibility interface {
	CanCombine(a, b Action) bool
}

// CompatibilityFunc adapts a function to Compatibility.
type CompatibilityFunc func(a, b Action) bool

// CanCombine calls f(a, b).
func (f CompatibilityFunc) CanCombine(a, b Action) bool { return f(a, b) }
