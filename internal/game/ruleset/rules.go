// Package ruleset loads the rule-book tables and serves them to the combat
// resolver through its collaborator interfaces.
package ruleset

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
)

// Layout of a rules directory.
const (
	EquipmentDir = "equipment"
	ActionsDir   = "actions"
	TablesFile   = "tables.yaml"
)

// Rules is a loaded rule book. It is read-only and safe for concurrent use.
type Rules struct {
	items   *equipment.Registry
	actions map[action.Code]*ActionDef
	tables  *Tables
}

// New assembles Rules from already loaded parts and cross-checks them.
//
// Precondition: items and tables are non-nil.
// Postcondition: returns Rules or an error listing every dangling reference.
func New(items *equipment.Registry, actions []*ActionDef, tables *Tables) (*Rules, error) {
	if items == nil || tables == nil {
		panic("ruleset.New: precondition violated: items and tables must be non-nil")
	}
	r := &Rules{items: items, actions: make(map[action.Code]*ActionDef, len(actions)), tables: tables}
	var errs []error
	for _, d := range actions {
		code := action.Code(d.ID)
		if _, dup := r.actions[code]; dup {
			errs = append(errs, fmt.Errorf("action %q defined twice", d.ID))
			continue
		}
		r.actions[code] = d
	}
	for _, d := range actions {
		for _, other := range d.Incompatible {
			if _, ok := r.actions[action.Code(other)]; !ok {
				errs = append(errs, fmt.Errorf("action %q: incompatible action %q is not defined", d.ID, other))
			}
		}
	}
	for _, d := range items.All() {
		for _, code := range d.Actions {
			if _, ok := r.actions[action.Code(code)]; !ok {
				errs = append(errs, fmt.Errorf("item %q: action %q is not defined", d.ID, code))
			}
		}
	}
	for _, code := range tables.BareHandActions {
		if _, ok := r.actions[action.Code(code)]; !ok {
			errs = append(errs, fmt.Errorf("bare_hand_actions: action %q is not defined", code))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}
	return r, nil
}

// Load reads a rules directory: item defs under equipment/, action defs
// under actions/ and the numeric tables in tables.yaml.
//
// Precondition: dir is a readable directory.
// Postcondition: returns consistent Rules or a non-nil error.
func Load(dir string) (*Rules, error) {
	defs, err := equipment.LoadDefs(filepath.Join(dir, EquipmentDir))
	if err != nil {
		return nil, err
	}
	items := equipment.NewRegistry()
	for _, d := range defs {
		if err := items.Register(d); err != nil {
			return nil, err
		}
	}
	actions, err := LoadActions(filepath.Join(dir, ActionsDir))
	if err != nil {
		return nil, err
	}
	tables, err := LoadTables(filepath.Join(dir, TablesFile))
	if err != nil {
		return nil, err
	}
	return New(items, actions, tables)
}

// Items returns the equipment registry.
func (r *Rules) Items() *equipment.Registry { return r.items }

// Tables returns the numeric tables.
func (r *Rules) Tables() *Tables { return r.tables }

// Item returns the capability value for code; the empty code is a bare hand.
func (r *Rules) Item(code string) (equipment.Item, error) {
	return r.items.Item(equipment.Code(code))
}

// ActionDef returns the definition of code and whether it exists.
func (r *Rules) ActionDef(code action.Code) (*ActionDef, bool) {
	d, ok := r.actions[code]
	return d, ok
}

// ActionDefs returns every action definition sorted by ID.
func (r *Rules) ActionDefs() []*ActionDef {
	out := make([]*ActionDef, 0, len(r.actions))
	for _, d := range r.actions {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Action returns the action value for code.
func (r *Rules) Action(code string) (action.Action, error) {
	d, ok := r.actions[action.Code(code)]
	if !ok {
		return action.Action{}, fmt.Errorf("ruleset: unknown action %q", code)
	}
	return d.Action(), nil
}

// Actions resolves codes to action values in order, reporting every unknown code.
func (r *Rules) Actions(codes []string) ([]action.Action, error) {
	out := make([]action.Action, 0, len(codes))
	var errs []error
	for _, code := range codes {
		a, err := r.Action(code)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, a)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// ActionSet resolves codes and validates them as a set under the rule
// book's compatibility.
func (r *Rules) ActionSet(codes []string) (action.Set, error) {
	actions, err := r.Actions(codes)
	if err != nil {
		return action.Set{}, err
	}
	return action.NewSet(actions, r.Compatibility())
}

// Combat bundles the providers for a bearer with the given proficiencies.
// effects replaces the table effects when non-nil, e.g. with ScriptedEffects.
func (r *Rules) Combat(p Proficiencies, effects combat.ActionEffects, applyDistanceModifier bool) combat.Rules {
	if effects == nil {
		effects = r.Effects()
	}
	return combat.Rules{
		Armament:              r.Armament(),
		Skills:                r.Skills(p),
		Effects:               effects,
		Formulas:              r.Formulas(),
		ApplyDistanceModifier: applyDistanceModifier,
	}
}

// def returns the definition behind a non-empty item.
// An item unknown to the registry is a programming fault and panics.
func (r *Rules) def(item equipment.Item) *equipment.Def {
	d, ok := r.items.Def(item.Code)
	if !ok {
		panic(fmt.Sprintf("ruleset: precondition violated: item %q is not registered", item.Code))
	}
	return d
}
