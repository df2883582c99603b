package combat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

// Sentinel errors matched with errors.Is against the typed errors New returns.
var (
	ErrCanNotHoldItByTwoHands                    = errors.New("can not hold it by two hands")
	ErrCanNotHoldItByOneHand                     = errors.New("can not hold it by one hand")
	ErrImpossibleActionsWithCurrentWeaponlike    = errors.New("impossible actions with current weapon-like")
	ErrCanNotUseArmamentBecauseOfMissingStrength = errors.New("can not use armament because of missing strength")
	// ErrNoHandLeftForShield is holding.ErrNoHandLeftForShield, re-exported for callers of New.
	ErrNoHandLeftForShield = holding.ErrNoHandLeftForShield
)

// HoldingError reports an item that can not be held the requested way.
type HoldingError struct {
	Item       equipment.Item
	Holding    holding.Holding
	TwoWeapons bool
	Err        error
}

func (e *HoldingError) Error() string {
	msg := fmt.Sprintf("%v: %s held %s", e.Err, e.Item, e.Holding)
	if e.TwoWeapons {
		msg += " while fighting with two weapons"
	}
	return msg
}

// Unwrap returns the sentinel describing the violation.
func (e *HoldingError) Unwrap() error { return e.Err }

// ActionError reports chosen actions the primary item does not allow.
type ActionError struct {
	Item    equipment.Item
	Actions []action.Action
}

func (e *ActionError) Error() string {
	codes := make([]string, len(e.Actions))
	for i, a := range e.Actions {
		codes[i] = string(a.Code)
	}
	return fmt.Sprintf("%v: %s does not allow [%s]",
		ErrImpossibleActionsWithCurrentWeaponlike, e.Item, strings.Join(codes, ", "))
}

// Unwrap returns ErrImpossibleActionsWithCurrentWeaponlike.
func (e *ActionError) Unwrap() error { return ErrImpossibleActionsWithCurrentWeaponlike }

// StrengthError reports an item the bearer is too weak to use in its holding.
type StrengthError struct {
	Item     equipment.Item
	Holding  holding.Holding
	Strength int
	Size     int
}

func (e *StrengthError) Error() string {
	return fmt.Sprintf("%v: %s held %s with strength %d at size %d",
		ErrCanNotUseArmamentBecauseOfMissingStrength, e.Item, e.Holding, e.Strength, e.Size)
}

// Unwrap returns ErrCanNotUseArmamentBecauseOfMissingStrength.
func (e *StrengthError) Unwrap() error { return ErrCanNotUseArmamentBecauseOfMissingStrength }
