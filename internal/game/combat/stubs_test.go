package combat_test

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

var errOutOfRange = errors.New("target beyond maximal range")

var (
	sword = equipment.Item{Code: "long_sword", Damage: equipment.DamageCut,
		Caps: equipment.CapWeapon | equipment.CapMelee | equipment.CapOneHand | equipment.CapTwoHands}
	zweihander = equipment.Item{Code: "zweihander", Damage: equipment.DamageCut,
		Caps: equipment.CapWeapon | equipment.CapMelee | equipment.CapTwoHands}
	dagger = equipment.Item{Code: "dagger", Damage: equipment.DamagePierce,
		Caps: equipment.CapWeapon | equipment.CapMelee | equipment.CapOneHand}
	mace = equipment.Item{Code: "mace", Damage: equipment.DamageCrush,
		Caps: equipment.CapWeapon | equipment.CapMelee | equipment.CapOneHand}
	shield = equipment.Item{Code: "round_shield",
		Caps: equipment.CapShield | equipment.CapMelee | equipment.CapOneHand}
	bow = equipment.Item{Code: "long_bow", Damage: equipment.DamagePierce,
		Caps: equipment.CapWeapon | equipment.CapShooting | equipment.CapTwoHands | equipment.CapIndirectFire}
	javelin = equipment.Item{Code: "javelin", Damage: equipment.DamagePierce,
		Caps: equipment.CapWeapon | equipment.CapThrowing | equipment.CapOneHand}
	mail = equipment.Item{Code: "mail", Caps: equipment.CapArmor}
	helm = equipment.Item{Code: "pot_helm", Caps: equipment.CapHelm}
)

var (
	attackAction = action.Action{Code: "attack", Scope: action.ScopeAny}
	parryAction  = action.Action{Code: "parry", Scope: action.ScopeMeleeOnly}
	chargeAction = action.Action{Code: "charge", Scope: action.ScopeMeleeOnly}
	aimAction    = action.Action{Code: "aim", Scope: action.ScopeRangedOnly}
)

type itemStats struct {
	length, offensiveness, cover, wounds, twoHandedWounds int
	minStrength, rangeBase, loading                        int
	actions                                                []action.Code
}

var stats = map[equipment.Item]itemStats{
	equipment.None: {actions: []action.Code{"attack", "parry"}},
	sword:          {length: 2, offensiveness: 1, cover: 1, wounds: 3, twoHandedWounds: 1, minStrength: 12, actions: []action.Code{"attack", "parry", "charge"}},
	zweihander:     {length: 3, offensiveness: 2, cover: 1, wounds: 5, minStrength: 14, actions: []action.Code{"attack", "charge"}},
	dagger:         {length: 0, offensiveness: 0, cover: 0, wounds: 1, minStrength: 4, actions: []action.Code{"attack", "parry"}},
	mace:           {length: 1, offensiveness: 0, cover: 0, wounds: 3, minStrength: 10, actions: []action.Code{"attack", "charge"}},
	shield:         {cover: 3, wounds: 1, minStrength: 8, actions: []action.Code{"attack", "parry"}},
	bow:            {wounds: 4, minStrength: 10, rangeBase: 20, loading: 1, actions: []action.Code{"attack", "aim"}},
	javelin:        {wounds: 2, minStrength: 6, rangeBase: 4, actions: []action.Code{"attack", "aim"}},
}

// deficit is how far strength falls short of the strength needed to use
// item without malus (min strength + 2).
func deficit(item equipment.Item, strength int) int {
	return max(0, stats[item].minStrength+2-strength)
}

type stubArmament struct{}

func (stubArmament) CanUse(item equipment.Item, strength, size int) bool {
	return strength >= stats[item].minStrength-size
}
func (stubArmament) PossibleActions(item equipment.Item) []action.Code { return stats[item].actions }
func (stubArmament) Length(item equipment.Item) int                    { return stats[item].length }
func (stubArmament) Offensiveness(item equipment.Item) int             { return stats[item].offensiveness }
func (stubArmament) Cover(item equipment.Item) int                     { return stats[item].cover }
func (stubArmament) Wounds(item equipment.Item, strength int) int {
	if item.IsEmpty() {
		return 0
	}
	return stats[item].wounds + strength/5
}
func (stubArmament) TwoHandedWoundsBonus(item equipment.Item) int { return stats[item].twoHandedWounds }
func (stubArmament) FightNumberStrengthMalus(item equipment.Item, strength, _ int) int {
	return -deficit(item, strength)
}
func (stubArmament) AttackNumberStrengthMalus(item equipment.Item, strength, _ int) int {
	return -deficit(item, strength)
}
func (stubArmament) DefenseNumberStrengthMalus(item equipment.Item, strength, _ int) int {
	return -deficit(item, strength) / 2
}
func (stubArmament) EncounterRange(item equipment.Item, strength, size, speed int) int {
	switch {
	case item.IsShooting():
		return stats[item].rangeBase + (strength+size)/5
	case item.IsThrowing():
		return stats[item].rangeBase + speed/2
	default:
		return stats[item].length + 1
	}
}
func (stubArmament) MaximalRange(_ equipment.Item, encounter int) int { return encounter * 2 }
func (stubArmament) LoadingRounds(item equipment.Item, _, _ int) int  { return stats[item].loading }
func (stubArmament) DistanceModifier(_ equipment.Item, encounter, maximal, distance int) (int, error) {
	switch {
	case distance > maximal:
		return 0, fmt.Errorf("distance %d: %w", distance, errOutOfRange)
	case distance > encounter:
		return -2, nil
	default:
		return 0, nil
	}
}

type stubSkills struct{}

func (stubSkills) FightNumberMalus(_ equipment.Item, twoWeapons bool) int {
	if twoWeapons {
		return -2
	}
	return 0
}
func (stubSkills) ProtectiveFightNumberMalus(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	return -1
}
func (stubSkills) AttackNumberMalus(_ equipment.Item, twoWeapons bool) int {
	if twoWeapons {
		return -1
	}
	return 0
}
func (stubSkills) WeaponCoverMalus(equipment.Item) int { return -1 }
func (stubSkills) ShieldCoverMalus(equipment.Item) int { return 0 }
func (stubSkills) BaseOfWoundsMalus(_ equipment.Item, twoWeapons bool) int {
	if twoWeapons {
		return -1
	}
	return 0
}

type effect struct {
	fight, attack, defense, faster, wounds, woundsCrush, speed int
}

var effects = map[action.Code]effect{
	"attack": {attack: 1},
	"parry":  {defense: 2, faster: 1},
	"charge": {attack: 2, defense: -2, faster: -3, wounds: 1, woundsCrush: 2, speed: 4},
	"aim":    {attack: 3},
}

type stubEffects struct{}

func (stubEffects) sum(actions action.Set, pick func(effect) int) int {
	total := 0
	for a := range actions.All() {
		total += pick(effects[a.Code])
	}
	return total
}
func (e stubEffects) FightNumber(s action.Set) int {
	return e.sum(s, func(x effect) int { return x.fight })
}
func (e stubEffects) AttackNumber(s action.Set) int {
	return e.sum(s, func(x effect) int { return x.attack })
}
func (e stubEffects) DefenseNumber(s action.Set) int {
	return e.sum(s, func(x effect) int { return x.defense })
}
func (e stubEffects) DefenseNumberAgainstFaster(s action.Set) int {
	return e.sum(s, func(x effect) int { return x.faster })
}
func (e stubEffects) BaseOfWounds(s action.Set, crush bool) int {
	if crush {
		return e.sum(s, func(x effect) int { return x.woundsCrush })
	}
	return e.sum(s, func(x effect) int { return x.wounds })
}
func (e stubEffects) Speed(s action.Set) int {
	return e.sum(s, func(x effect) int { return x.speed })
}

type stubFormulas struct{}

func (stubFormulas) BaseFightNumber(agility, profession, size int) int {
	return agility + profession + size
}
func (stubFormulas) AttackFromAgility(agility int) int            { return agility / 2 }
func (stubFormulas) ShootingFromKnack(knack int) int              { return knack/2 + 1 }
func (stubFormulas) DefenseFromAgility(agility int) int           { return agility/2 + 2 }
func (stubFormulas) DefenseAgainstShooting(defense, size int) int { return defense - size }
func (stubFormulas) MovedDistance(speed int) int                  { return speed * 2 }

type attrs struct {
	str, agi, kna, spd, siz int
	armor, helm             equipment.Item
}

func (a attrs) Strength() int         { return a.str }
func (a attrs) OffhandStrength() int  { return a.str - holding.OffhandPenalty }
func (a attrs) Agility() int          { return a.agi }
func (a attrs) Knack() int            { return a.kna }
func (a attrs) Speed() int            { return a.spd }
func (a attrs) Size() int             { return a.siz }
func (a attrs) Armor() equipment.Item { return a.armor }
func (a attrs) Helm() equipment.Item  { return a.helm }

func fighter() attrs {
	return attrs{str: 15, agi: 12, kna: 14, spd: 8}
}

func rules() combat.Rules {
	return combat.Rules{
		Armament: stubArmament{},
		Skills:   stubSkills{},
		Effects:  stubEffects{},
		Formulas: stubFormulas{},
	}
}

var allowAll = action.CompatibilityFunc(func(a, b action.Action) bool { return true })

func actions(as ...action.Action) action.Set {
	s, err := action.NewSet(as, allowAll)
	if err != nil {
		panic(err)
	}
	return s
}
