package scenario

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/combatsheet/internal/game/attribute"
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
	"github.com/cory-johannsen/combatsheet/internal/game/ruleset"
)

// ErrWrongGear is returned when armor or helm names an item of another kind.
var ErrWrongGear = errors.New("item can not be worn there")

// Options tune how scenarios are resolved.
type Options struct {
	// Effects replaces the rule book's action effects when non-nil.
	Effects combat.ActionEffects
	// ApplyDistanceModifier adds the ranged distance modifier to attack numbers.
	ApplyDistanceModifier bool
}

// Build resolves every code in s against rules and constructs the combat
// resolver, which validates the combination.
//
// Precondition: s and rules are non-nil.
// Postcondition: returns a resolver or a non-nil error; resolver guard
// failures unwrap to the combat sentinels.
func Build(s *Scenario, rules *ruleset.Rules, opts Options) (*combat.Resolver, error) {
	if s == nil || rules == nil {
		panic("scenario.Build: precondition violated: scenario and rules must be non-nil")
	}
	ch, cb := s.Character, s.Combat

	armor, err := wearable(rules, "armor", ch.Armor, equipment.CapArmor)
	if err != nil {
		return nil, err
	}
	helm, err := wearable(rules, "helm", ch.Helm, equipment.CapHelm)
	if err != nil {
		return nil, err
	}
	primary, err := rules.Item(cb.Primary)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	second, err := rules.Item(cb.Second)
	if err != nil {
		return nil, fmt.Errorf("second: %w", err)
	}
	actions, err := rules.ActionSet(cb.Actions)
	if err != nil {
		return nil, fmt.Errorf("actions: %w", err)
	}

	base := attribute.Static{Str: ch.Strength, Agi: ch.Agility, Kna: ch.Knack, Spd: ch.Speed, Siz: ch.Size}
	attrs := attribute.NewEffective(base, attribute.Burden{CargoWeight: ch.CargoWeight, Armor: armor, Helm: helm}, rules.Load())

	return combat.New(combat.Configuration{
		Attributes: attrs,
		Actions:    actions,
		Primary:    primary,
		Holding:    cb.Holding,
		Second:     second,
		TwoWeapons: cb.TwoWeapons,
		Profession: ch.Profession,
	}, rules.Combat(ruleset.Proficiencies(ch.Skills), opts.Effects, opts.ApplyDistanceModifier))
}

func wearable(rules *ruleset.Rules, slot, code string, want equipment.Capability) (equipment.Item, error) {
	item, err := rules.Item(code)
	if err != nil {
		return equipment.None, fmt.Errorf("%s: %w", slot, err)
	}
	if !item.IsEmpty() && !item.Has(want) {
		return equipment.None, fmt.Errorf("%s %s: %w", slot, item, ErrWrongGear)
	}
	return item, nil
}
