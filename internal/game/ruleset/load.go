package ruleset

import (
	"github.com/cory-johannsen/combatsheet/internal/game/attribute"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
)

type loadRules struct{ r *Rules }

// Load returns the rules for carried weight and worn protectives.
func (r *Rules) Load() attribute.LoadRules { return loadRules{r} }

func (l loadRules) Weight(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return l.r.def(item).Weight
}

// LoadMalus looks the malus up by how far load exceeds strength.
func (l loadRules) LoadMalus(load, strength int) int {
	return l.r.tables.LoadMalus.Lookup(load - strength)
}

func (l loadRules) AgilityMalus(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return l.r.def(item).AgilityMalus
}

func (l loadRules) KnackMalus(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return l.r.def(item).KnackMalus
}

func (l loadRules) SpeedMalus(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return l.r.def(item).SpeedMalus
}
