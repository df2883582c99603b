package combat

import (
	"fmt"
	"slices"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

// Cover selects which held item, if any, is raised to cover a defense.
type Cover int

const (
	// CoverNone defends without item cover.
	CoverNone Cover = iota
	// CoverPrimary covers with the primary item.
	CoverPrimary
	// CoverSecond covers with the second item, usually a shield.
	CoverSecond
)

// String returns the canonical name of the cover choice.
func (c Cover) String() string {
	switch c {
	case CoverNone:
		return "none"
	case CoverPrimary:
		return "primary"
	case CoverSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Configuration is one combat scenario: who fights, with what, held how,
// doing which actions.
type Configuration struct {
	Attributes Attributes
	Actions    action.Set
	// Primary is the weapon or shield attacked with; equipment.None is a bare hand.
	Primary equipment.Item
	Holding holding.Holding
	// Second is the shield or off-hand weapon; equipment.None when the other hand is empty.
	Second     equipment.Item
	TwoWeapons bool
	// Profession is the bearer's combat profession rank.
	Profession int
}

// Resolver derives combat numbers from a validated, frozen Configuration.
//
// A Resolver never changes after New returns; every query is a pure
// function of the configuration and the rules, and is safe for concurrent use.
type Resolver struct {
	cfg   Configuration
	rules Rules

	// secondInHand is true when the second hand holds an item; an empty
	// hand counts while fighting with two weapons.
	secondInHand    bool
	secondHolding   holding.Holding
	primaryStrength int
	secondStrength  int
}

// New validates cfg and returns its Resolver.
//
// Guards run in order and the first violation is returned:
//  1. two weapons held by two hands: ErrCanNotHoldItByTwoHands;
//  2. primary (then second) item not holdable as requested:
//     ErrCanNotHoldItByTwoHands or ErrCanNotHoldItByOneHand;
//  3. actions the primary item does not allow, all listed:
//     ErrImpossibleActionsWithCurrentWeaponlike;
//  4. primary, then second item at its complement holding, too heavy for the
//     bearer: ErrCanNotUseArmamentBecauseOfMissingStrength; a second item
//     next to a two-handed primary: ErrNoHandLeftForShield.
//
// Precondition: cfg.Attributes is non-nil and every rules collaborator is set.
// Postcondition: exactly one of the results is non-nil.
func New(cfg Configuration, rules Rules) (*Resolver, error) {
	if cfg.Attributes == nil {
		panic("combat.New: precondition violated: Attributes must be non-nil")
	}
	if !rules.complete() {
		panic("combat.New: precondition violated: every rules collaborator must be non-nil")
	}

	if cfg.TwoWeapons && cfg.Holding.IsTwoHanded() {
		return nil, &HoldingError{Item: cfg.Primary, Holding: cfg.Holding, TwoWeapons: true, Err: ErrCanNotHoldItByTwoHands}
	}

	if err := checkHoldable(cfg.Primary, cfg.Holding); err != nil {
		return nil, err
	}
	secondInHand := !cfg.Second.IsEmpty() || cfg.TwoWeapons
	if secondInHand && !cfg.Second.CanHoldByOneHand() {
		return nil, &HoldingError{Item: cfg.Second, Holding: holding.OffHand, TwoWeapons: cfg.TwoWeapons, Err: ErrCanNotHoldItByOneHand}
	}

	if err := checkActions(cfg.Primary, cfg.Actions, rules.Armament); err != nil {
		return nil, err
	}

	r := &Resolver{cfg: cfg, rules: rules, secondInHand: secondInHand}
	size := cfg.Attributes.Size()

	r.primaryStrength = holding.StrengthFor(cfg.Primary, cfg.Holding, cfg.Attributes)
	if !rules.Armament.CanUse(cfg.Primary, r.primaryStrength, size) {
		return nil, &StrengthError{Item: cfg.Primary, Holding: cfg.Holding, Strength: r.primaryStrength, Size: size}
	}

	if secondInHand {
		h, err := holding.Complement(cfg.Holding)
		if err != nil {
			return nil, &HoldingError{Item: cfg.Second, Holding: cfg.Holding, TwoWeapons: cfg.TwoWeapons, Err: err}
		}
		r.secondHolding = h
		r.secondStrength = holding.StrengthFor(cfg.Second, h, cfg.Attributes)
		if !rules.Armament.CanUse(cfg.Second, r.secondStrength, size) {
			return nil, &StrengthError{Item: cfg.Second, Holding: h, Strength: r.secondStrength, Size: size}
		}
	}
	return r, nil
}

func checkHoldable(item equipment.Item, h holding.Holding) error {
	if h.IsTwoHanded() {
		if !item.CanHoldByTwoHands() {
			return &HoldingError{Item: item, Holding: h, Err: ErrCanNotHoldItByTwoHands}
		}
		return nil
	}
	if h != holding.MainHand && h != holding.OffHand {
		panic(fmt.Sprintf("combat.New: precondition violated: unknown holding %d", int(h)))
	}
	if !item.CanHoldByOneHand() {
		return &HoldingError{Item: item, Holding: h, Err: ErrCanNotHoldItByOneHand}
	}
	return nil
}

func checkActions(item equipment.Item, actions action.Set, armament ArmamentRules) error {
	possible := armament.PossibleActions(item)
	var impossible []action.Action
	for a := range actions.All() {
		if !slices.Contains(possible, a.Code) {
			impossible = append(impossible, a)
		}
	}
	if len(impossible) > 0 {
		return &ActionError{Item: item, Actions: impossible}
	}
	return nil
}

// Configuration returns the validated configuration.
func (r *Resolver) Configuration() Configuration { return r.cfg }

// PrimaryStrength returns the strength brought to the primary item in its holding.
func (r *Resolver) PrimaryStrength() int { return r.primaryStrength }

// SecondStrength returns the strength brought to the second item in its
// complement holding, or 0 when the second hand is unused.
func (r *Resolver) SecondStrength() int { return r.secondStrength }

// SecondHolding returns the holding of the second item, or holding.Unknown
// when the second hand is unused.
func (r *Resolver) SecondHolding() holding.Holding { return r.secondHolding }

func (r *Resolver) size() int { return r.cfg.Attributes.Size() }

// FightNumberModifier sums strength maluses of both held items, skill
// maluses of worn protectives, shield and primary weapon, the longer of the
// two items' lengths and the actions' fight number effects.
func (r *Resolver) FightNumberModifier() int {
	a, s := r.rules.Armament, r.rules.Skills
	cfg := r.cfg

	m := a.FightNumberStrengthMalus(cfg.Primary, r.primaryStrength, r.size())
	if r.secondInHand {
		m += a.FightNumberStrengthMalus(cfg.Second, r.secondStrength, r.size())
	}
	m += s.ProtectiveFightNumberMalus(cfg.Attributes.Armor())
	m += s.ProtectiveFightNumberMalus(cfg.Attributes.Helm())
	if cfg.Second.IsShield() {
		m += s.ProtectiveFightNumberMalus(cfg.Second)
	}
	m += s.FightNumberMalus(cfg.Primary, cfg.TwoWeapons)
	m += max(a.Length(cfg.Primary), a.Length(cfg.Second))
	m += r.rules.Effects.FightNumber(cfg.Actions)
	return m
}

// FightNumber returns the base fight number plus FightNumberModifier.
func (r *Resolver) FightNumber() int {
	attrs := r.cfg.Attributes
	return r.rules.Formulas.BaseFightNumber(attrs.Agility(), r.cfg.Profession, attrs.Size()) + r.FightNumberModifier()
}

// AttackNumberModifier sums the primary item's strength and skill maluses,
// its offensiveness and the actions' attack effects. For a ranged primary
// and a target further than 1 away the distance modifier is computed; it is
// added only when the rules enable it.
func (r *Resolver) AttackNumberModifier(distance int) (int, error) {
	a := r.rules.Armament
	primary := r.cfg.Primary

	m := a.AttackNumberStrengthMalus(primary, r.primaryStrength, r.size())
	m += r.rules.Skills.AttackNumberMalus(primary, r.cfg.TwoWeapons)
	m += a.Offensiveness(primary)
	if distance > 1 && primary.IsRanged() {
		dm, err := a.DistanceModifier(primary, r.EncounterRange(), r.MaximalRange(), distance)
		if err != nil {
			return 0, err
		}
		if r.rules.ApplyDistanceModifier {
			m += dm
		}
	}
	m += r.rules.Effects.AttackNumber(r.cfg.Actions)
	return m, nil
}

// AttackNumber returns the base attack number plus AttackNumberModifier.
// Shooting weapons attack from knack, everything else from agility.
func (r *Resolver) AttackNumber(distance int) (int, error) {
	m, err := r.AttackNumberModifier(distance)
	if err != nil {
		return 0, err
	}
	attrs := r.cfg.Attributes
	if r.cfg.Primary.IsShooting() {
		return r.rules.Formulas.ShootingFromKnack(attrs.Knack()) + m, nil
	}
	return r.rules.Formulas.AttackFromAgility(attrs.Agility()) + m, nil
}

// BaseOfWounds returns the damage potential of a successful hit.
func (r *Resolver) BaseOfWounds() int {
	a := r.rules.Armament
	primary := r.cfg.Primary

	w := a.Wounds(primary, r.primaryStrength)
	w += r.rules.Skills.BaseOfWoundsMalus(primary, r.cfg.TwoWeapons)
	if r.cfg.Holding.IsTwoHanded() {
		w += a.TwoHandedWoundsBonus(primary)
	}
	w += r.rules.Effects.BaseOfWounds(r.cfg.Actions, primary.Damage == equipment.DamageCrush)
	return w
}

// LoadingRounds returns the rounds needed to reload; zero unless the primary is ranged.
func (r *Resolver) LoadingRounds() int {
	if !r.cfg.Primary.IsRanged() {
		return 0
	}
	return r.rules.Armament.LoadingRounds(r.cfg.Primary, r.primaryStrength, r.size())
}

// EncounterRange returns the effective range of the primary item.
func (r *Resolver) EncounterRange() int {
	return r.rules.Armament.EncounterRange(r.cfg.Primary, r.primaryStrength, r.size(), r.cfg.Attributes.Speed())
}

// MaximalRange returns the absolute range limit of the primary item; for
// melee items it equals the encounter range.
func (r *Resolver) MaximalRange() int {
	enc := r.EncounterRange()
	if !r.cfg.Primary.IsRanged() {
		return enc
	}
	return r.rules.Armament.MaximalRange(r.cfg.Primary, enc)
}

// CoverModifier returns what raising the chosen item adds to a defense.
// CoverSecond with an unused second hand adds nothing.
//
// Precondition: c is CoverNone, CoverPrimary or CoverSecond.
func (r *Resolver) CoverModifier(c Cover) int {
	switch c {
	case CoverNone:
		return 0
	case CoverPrimary:
		return r.coverOf(r.cfg.Primary, r.primaryStrength)
	case CoverSecond:
		if !r.secondInHand {
			return 0
		}
		return r.coverOf(r.cfg.Second, r.secondStrength)
	default:
		panic(fmt.Sprintf("combat.CoverModifier: precondition violated: unknown cover %d", int(c)))
	}
}

// coverOf uses the weapon skill for true weapons and the shield skill
// otherwise, also for a shield used as an improvised weapon.
func (r *Resolver) coverOf(item equipment.Item, strength int) int {
	a, s := r.rules.Armament, r.rules.Skills
	m := a.DefenseNumberStrengthMalus(item, strength, r.size()) + a.Cover(item)
	if item.IsWeapon() {
		return m + s.WeaponCoverMalus(item)
	}
	return m + s.ShieldCoverMalus(item)
}

// DefenseNumber returns the defense number with the chosen cover.
func (r *Resolver) DefenseNumber(c Cover) int {
	base := r.rules.Formulas.DefenseFromAgility(r.cfg.Attributes.Agility())
	return base + r.rules.Effects.DefenseNumber(r.cfg.Actions) + r.CoverModifier(c)
}

// DefenseNumberAgainstFaster returns the defense number against a faster
// opponent with the chosen cover.
func (r *Resolver) DefenseNumberAgainstFaster(c Cover) int {
	base := r.rules.Formulas.DefenseFromAgility(r.cfg.Attributes.Agility())
	return base + r.rules.Effects.DefenseNumberAgainstFaster(r.cfg.Actions) + r.CoverModifier(c)
}

// DefenseAgainstShooting returns the defense number with the chosen cover
// adjusted for the bearer's size as a target for missiles.
func (r *Resolver) DefenseAgainstShooting(c Cover) int {
	return r.rules.Formulas.DefenseAgainstShooting(r.DefenseNumber(c), r.size())
}

// DefenseAgainstShootingPassiveShield returns the uncovered defense against
// shooting plus the bare cover value of a carried shield that was not raised.
func (r *Resolver) DefenseAgainstShootingPassiveShield() int {
	d := r.DefenseAgainstShooting(CoverNone)
	if r.cfg.Second.IsShield() {
		d += r.rules.Armament.Cover(r.cfg.Second)
	}
	return d
}

// MovedDistance returns the distance covered by the chosen actions; zero
// unless the actions change speed.
func (r *Resolver) MovedDistance() int {
	mod := r.rules.Effects.Speed(r.cfg.Actions)
	if mod == 0 {
		return 0
	}
	return r.rules.Formulas.MovedDistance(r.cfg.Attributes.Speed() + mod)
}
