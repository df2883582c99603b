package ruleset

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
)

var (
	// ErrBeyondMaximalRange is returned for a target further than the maximal range.
	ErrBeyondMaximalRange = errors.New("target beyond maximal range")
	// ErrNegativeDistance is returned for a negative target distance.
	ErrNegativeDistance = errors.New("negative target distance")
)

type armament struct{ r *Rules }

// Armament returns the table-driven armament rules. The empty item can be
// used at any strength and has no modifiers.
func (r *Rules) Armament() combat.ArmamentRules { return armament{r} }

func (a armament) CanUse(item equipment.Item, strength, size int) bool {
	if item.IsEmpty() {
		return true
	}
	return strength+size >= a.r.def(item).MinStrength
}

func (a armament) PossibleActions(item equipment.Item) []action.Code {
	codes := a.r.tables.BareHandActions
	if !item.IsEmpty() {
		codes = a.r.def(item).Actions
	}
	out := make([]action.Code, len(codes))
	for i, c := range codes {
		out[i] = action.Code(c)
	}
	return out
}

func (a armament) Length(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.def(item).Length
}

func (a armament) Offensiveness(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.def(item).Offensiveness
}

func (a armament) Cover(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.def(item).Cover
}

func (a armament) Wounds(item equipment.Item, strength int) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.def(item).Wounds + a.r.tables.StrengthWounds.Lookup(strength)
}

func (a armament) TwoHandedWoundsBonus(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.def(item).TwoHandedWoundsBonus
}

// missingStrength returns how far strength at size falls short of the
// item's full strength; zero when the item sets none.
func (a armament) missingStrength(item equipment.Item, strength, size int) int {
	if item.IsEmpty() {
		return 0
	}
	d := a.r.def(item)
	if d.FullStrength == 0 {
		return 0
	}
	return max(0, d.FullStrength-strength-size)
}

func (a armament) FightNumberStrengthMalus(item equipment.Item, strength, size int) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.tables.StrengthMalus.Fight.Lookup(a.missingStrength(item, strength, size))
}

func (a armament) AttackNumberStrengthMalus(item equipment.Item, strength, size int) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.tables.StrengthMalus.Attack.Lookup(a.missingStrength(item, strength, size))
}

func (a armament) DefenseNumberStrengthMalus(item equipment.Item, strength, size int) int {
	if item.IsEmpty() {
		return 0
	}
	return a.r.tables.StrengthMalus.Defense.Lookup(a.missingStrength(item, strength, size))
}

// EncounterRange is 1 + length for melee items, the item's range plus a
// strength bonus for shooting and plus a speed bonus for throwing. Size
// counts toward strength the same way it does in CanUse.
func (a armament) EncounterRange(item equipment.Item, strength, size, speed int) int {
	if item.IsEmpty() {
		return 1
	}
	d := a.r.def(item)
	switch {
	case item.IsShooting():
		return d.Range + a.r.tables.ShootingRangeByStrength.Lookup(strength+size-d.MinStrength)
	case item.IsThrowing():
		return d.Range + a.r.tables.ThrownRangeBySpeed.Lookup(speed)
	default:
		return 1 + d.Length
	}
}

func (a armament) MaximalRange(item equipment.Item, encounterRange int) int {
	if item.IsEmpty() || !item.IsRanged() {
		return encounterRange
	}
	factor := a.r.def(item).RangeFactor
	if factor == 0 {
		factor = a.r.tables.DefaultRangeFactor
	}
	maximal := encounterRange * factor
	if item.Has(equipment.CapIndirectFire) {
		maximal *= a.r.tables.IndirectFireFactor
	}
	return maximal
}

// LoadingRounds adds one round when strength plus size is below the item's
// full strength.
func (a armament) LoadingRounds(item equipment.Item, strength, size int) int {
	if item.IsEmpty() {
		return 0
	}
	d := a.r.def(item)
	rounds := d.LoadingRounds
	if d.FullStrength > 0 && strength+size < d.FullStrength {
		rounds++
	}
	return rounds
}

func (a armament) DistanceModifier(item equipment.Item, encounterRange, maximalRange, distance int) (int, error) {
	switch {
	case distance < 0:
		return 0, fmt.Errorf("%s at %d: %w", item, distance, ErrNegativeDistance)
	case distance > maximalRange:
		return 0, fmt.Errorf("%s at %d, maximal range %d: %w", item, distance, maximalRange, ErrBeyondMaximalRange)
	case encounterRange <= 0:
		return 0, nil
	}
	return a.r.tables.DistanceModifier.Lookup(distance * 100 / encounterRange), nil
}
