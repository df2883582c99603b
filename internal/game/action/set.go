package action

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	// ErrIncompatibleActionScope matches a set mixing melee-only and ranged-only actions.
	ErrIncompatibleActionScope = errors.New("melee-only and ranged-only actions can not be combined")
	// ErrIncompatibleActions matches a set holding a pair the compatibility rules forbid.
	ErrIncompatibleActions = errors.New("incompatible actions")
)

// ScopeError names the melee-only and ranged-only actions that clash.
type ScopeError struct {
	MeleeOnly  []Action
	RangedOnly []Action
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("%v: melee-only %s, ranged-only %s",
		ErrIncompatibleActionScope, joinActions(e.MeleeOnly), joinActions(e.RangedOnly))
}

// Unwrap returns ErrIncompatibleActionScope.
func (e *ScopeError) Unwrap() error { return ErrIncompatibleActionScope }

// Pair is an ordered pair of actions.
type Pair struct {
	First, Second Action
}

// CombinationError names every ordered pair the compatibility rules reject.
type CombinationError struct {
	Pairs []Pair
}

func (e *CombinationError) Error() string {
	parts := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		parts[i] = fmt.Sprintf("%s+%s", p.First, p.Second)
	}
	return fmt.Sprintf("%v: %s", ErrIncompatibleActions, strings.Join(parts, ", "))
}

// Unwrap returns ErrIncompatibleActions.
func (e *CombinationError) Unwrap() error { return ErrIncompatibleActions }

// Set is a validated, immutable collection of chosen actions.
// Actions are kept exactly as given: order and duplicates are preserved.
type Set struct {
	actions []Action
}

// EmptySet returns a set without actions.
func EmptySet() Set { return Set{} }

// NewSet validates actions and returns them as a Set.
//
// Validation fails with a *ScopeError when melee-only and ranged-only actions
// are mixed, then with a *CombinationError listing every ordered pair
// (including an action paired with itself) that compat rejects.
//
// Precondition: compat is non-nil.
// Postcondition: on success Actions() equals actions.
func NewSet(actions []Action, compat Compatibility) (Set, error) {
	var melee, ranged []Action
	for _, a := range actions {
		switch a.Scope {
		case ScopeMeleeOnly:
			melee = append(melee, a)
		case ScopeRangedOnly:
			ranged = append(ranged, a)
		}
	}
	if len(melee) > 0 && len(ranged) > 0 {
		return Set{}, &ScopeError{MeleeOnly: melee, RangedOnly: ranged}
	}

	var bad []Pair
	for _, a := range actions {
		for _, b := range actions {
			if !compat.CanCombine(a, b) {
				bad = append(bad, Pair{First: a, Second: b})
			}
		}
	}
	if len(bad) > 0 {
		return Set{}, &CombinationError{Pairs: bad}
	}
	return Set{actions: slices.Clone(actions)}, nil
}

// Actions returns a copy of the stored actions.
func (s Set) Actions() []Action { return slices.Clone(s.actions) }

// All iterates the stored actions in order. The sequence may be ranged over
// any number of times.
func (s Set) All() iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for _, a := range s.actions {
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns the number of stored actions, duplicates included.
func (s Set) Len() int { return len(s.actions) }

// IsEmpty reports whether no action was chosen.
func (s Set) IsEmpty() bool { return len(s.actions) == 0 }

// Contains reports whether an action with code is in the set.
func (s Set) Contains(code Code) bool {
	return slices.ContainsFunc(s.actions, func(a Action) bool { return a.Code == code })
}

// Codes returns the codes of the stored actions in order.
func (s Set) Codes() []Code {
	out := make([]Code, len(s.actions))
	for i, a := range s.actions {
		out[i] = a.Code
	}
	return out
}

// Count returns how often an action with code occurs in the set.
func (s Set) Count(code Code) int {
	n := 0
	for _, a := range s.actions {
		if a.Code == code {
			n++
		}
	}
	return n
}

func joinActions(actions []Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = string(a.Code)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
