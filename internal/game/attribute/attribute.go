// Package attribute derives a character's effective attributes from its
// base attributes, the load it carries and the protectives it wears.
package attribute

import (
	"sync"

	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

// Base supplies attributes already adjusted for level, race and health,
// but not yet for carried load or worn equipment.
type Base interface {
	Strength() int
	Agility() int
	Knack() int
	Speed() int
	Size() int
}

// LoadRules answers the rule-book questions about weight and worn gear.
type LoadRules interface {
	// Weight returns the carried weight of item; zero for the empty item.
	Weight(item equipment.Item) int
	// LoadMalus returns the non-positive malus for carrying load at strength.
	LoadMalus(load, strength int) int
	// AgilityMalus, KnackMalus and SpeedMalus return the non-positive
	// maluses of wearing a protective item.
	AgilityMalus(item equipment.Item) int
	KnackMalus(item equipment.Item) int
	SpeedMalus(item equipment.Item) int
}

// Burden is what a character carries and wears.
type Burden struct {
	CargoWeight int
	Armor       equipment.Item
	Helm        equipment.Item
}

// Static is a plain Base with fixed values.
type Static struct {
	Str, Agi, Kna, Spd, Siz int
}

func (s Static) Strength() int { return s.Str }
func (s Static) Agility() int  { return s.Agi }
func (s Static) Knack() int    { return s.Kna }
func (s Static) Speed() int    { return s.Spd }
func (s Static) Size() int     { return s.Siz }

// Effective is an immutable snapshot of load-adjusted attributes.
// Each value is computed on first use and cached; an Effective is safe for
// concurrent use.
type Effective struct {
	base   Base
	burden Burden
	rules  LoadRules

	loadOnce sync.Once
	load     int

	strOnce sync.Once
	str     int
	agiOnce sync.Once
	agi     int
	knaOnce sync.Once
	kna     int
	spdOnce sync.Once
	spd     int
}

// NewEffective builds the effective attributes of a character.
//
// Precondition: base and rules are non-nil.
// Postcondition: returns a non-nil *Effective.
func NewEffective(base Base, burden Burden, rules LoadRules) *Effective {
	if base == nil || rules == nil {
		panic("attribute.NewEffective: precondition violated: base and rules must be non-nil")
	}
	return &Effective{base: base, burden: burden, rules: rules}
}

// loadMalus is the malus the total carried weight imposes at base strength.
func (e *Effective) loadMalus() int {
	e.loadOnce.Do(func() {
		weight := e.burden.CargoWeight + e.rules.Weight(e.burden.Armor) + e.rules.Weight(e.burden.Helm)
		e.load = e.rules.LoadMalus(weight, e.base.Strength())
	})
	return e.load
}

// Strength returns the main-hand strength after load.
func (e *Effective) Strength() int {
	e.strOnce.Do(func() {
		e.str = e.base.Strength() + e.loadMalus()
	})
	return e.str
}

// OffhandStrength returns Strength minus the fixed off-hand penalty.
func (e *Effective) OffhandStrength() int {
	return e.Strength() - holding.OffhandPenalty
}

// Agility returns agility after load and worn protectives.
func (e *Effective) Agility() int {
	e.agiOnce.Do(func() {
		e.agi = e.base.Agility() + e.loadMalus() +
			e.rules.AgilityMalus(e.burden.Armor) + e.rules.AgilityMalus(e.burden.Helm)
	})
	return e.agi
}

// Knack returns knack after worn protectives.
func (e *Effective) Knack() int {
	e.knaOnce.Do(func() {
		e.kna = e.base.Knack() + e.rules.KnackMalus(e.burden.Armor) + e.rules.KnackMalus(e.burden.Helm)
	})
	return e.kna
}

// Speed returns speed after load and worn protectives.
func (e *Effective) Speed() int {
	e.spdOnce.Do(func() {
		e.spd = e.base.Speed() + e.loadMalus() +
			e.rules.SpeedMalus(e.burden.Armor) + e.rules.SpeedMalus(e.burden.Helm)
	})
	return e.spd
}

// Size is passed through unchanged.
func (e *Effective) Size() int { return e.base.Size() }

// Armor returns the worn body armor, or equipment.None.
func (e *Effective) Armor() equipment.Item { return e.burden.Armor }

// Helm returns the worn helm, or equipment.None.
func (e *Effective) Helm() equipment.Item { return e.burden.Helm }
