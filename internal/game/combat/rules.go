package combat

import (
	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

// Attributes are the effective attributes of the bearer.
type Attributes interface {
	holding.Strengths
	Agility() int
	Knack() int
	Speed() int
	Size() int
	Armor() equipment.Item
	Helm() equipment.Item
}

// ArmamentRules answers rule-book questions about a single item.
// Implementations must be pure and return zero modifiers for equipment.None.
type ArmamentRules interface {
	CanUse(item equipment.Item, strength, size int) bool
	PossibleActions(item equipment.Item) []action.Code

	Length(item equipment.Item) int
	Offensiveness(item equipment.Item) int
	Cover(item equipment.Item) int
	Wounds(item equipment.Item, strength int) int
	TwoHandedWoundsBonus(item equipment.Item) int

	FightNumberStrengthMalus(item equipment.Item, strength, size int) int
	AttackNumberStrengthMalus(item equipment.Item, strength, size int) int
	DefenseNumberStrengthMalus(item equipment.Item, strength, size int) int

	EncounterRange(item equipment.Item, strength, size, speed int) int
	// MaximalRange expands the encounter range of a ranged item.
	MaximalRange(item equipment.Item, encounterRange int) int
	LoadingRounds(item equipment.Item, strength, size int) int
	// DistanceModifier returns the attack number modifier for shooting or
	// throwing item at a target distance away; it fails when the distance
	// violates the range table.
	DistanceModifier(item equipment.Item, encounterRange, maximalRange, distance int) (int, error)
}

// SkillRules returns maluses for the bearer's missing skills. The bearer's
// skill table is bound into the implementation.
type SkillRules interface {
	FightNumberMalus(weapon equipment.Item, twoWeapons bool) int
	// ProtectiveFightNumberMalus covers armor, helms and shields.
	ProtectiveFightNumberMalus(item equipment.Item) int
	AttackNumberMalus(weapon equipment.Item, twoWeapons bool) int
	WeaponCoverMalus(weapon equipment.Item) int
	ShieldCoverMalus(shield equipment.Item) int
	BaseOfWoundsMalus(weapon equipment.Item, twoWeapons bool) int
}

// ActionEffects sums the contributions of a set of actions.
type ActionEffects interface {
	FightNumber(actions action.Set) int
	AttackNumber(actions action.Set) int
	DefenseNumber(actions action.Set) int
	DefenseNumberAgainstFaster(actions action.Set) int
	BaseOfWounds(actions action.Set, crush bool) int
	Speed(actions action.Set) int
}

// Formulas turn attributes into base numbers.
type Formulas interface {
	BaseFightNumber(agility, profession, size int) int
	AttackFromAgility(agility int) int
	ShootingFromKnack(knack int) int
	DefenseFromAgility(agility int) int
	DefenseAgainstShooting(defense, size int) int
	MovedDistance(speed int) int
}

// Rules bundles the rule-book collaborators of a Resolver.
type Rules struct {
	Armament ArmamentRules
	Skills   SkillRules
	Effects  ActionEffects
	Formulas Formulas
	// ApplyDistanceModifier adds the ranged distance modifier to the attack
	// number. When false the modifier is still computed, so range violations
	// are reported, but it does not change the number.
	ApplyDistanceModifier bool
}

func (r Rules) complete() bool {
	return r.Armament != nil && r.Skills != nil && r.Effects != nil && r.Formulas != nil
}
