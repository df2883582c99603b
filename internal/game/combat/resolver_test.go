package combat_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

func swordAndShield() combat.Configuration {
	return combat.Configuration{
		Attributes: fighter(),
		Actions:    action.EmptySet(),
		Primary:    sword,
		Holding:    holding.MainHand,
		Second:     shield,
		Profession: 3,
	}
}

func TestNew_SwordByTwoHands(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(),
		Primary:    sword,
		Holding:    holding.TwoHands,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, 17, r.PrimaryStrength())
	assert.Equal(t, holding.Unknown, r.SecondHolding())
	assert.Equal(t, 2, r.FightNumberModifier(), "only the sword's length contributes")
}

func TestNew_TwoWeaponsByTwoHandsFails(t *testing.T) {
	for _, item := range []equipment.Item{sword, zweihander, bow, equipment.None} {
		_, err := combat.New(combat.Configuration{
			Attributes: fighter(),
			Primary:    item,
			Holding:    holding.TwoHands,
			TwoWeapons: true,
		}, rules())
		assert.ErrorIs(t, err, combat.ErrCanNotHoldItByTwoHands, "item %s", item)

		var holdErr *combat.HoldingError
		require.True(t, errors.As(err, &holdErr))
		assert.True(t, holdErr.TwoWeapons)
		assert.Equal(t, item, holdErr.Item)
	}
}

func TestNew_OneHandedItemByTwoHandsFails(t *testing.T) {
	_, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: dagger, Holding: holding.TwoHands,
	}, rules())
	assert.ErrorIs(t, err, combat.ErrCanNotHoldItByTwoHands)
}

func TestNew_TwoHandedOnlyByOneHandFails(t *testing.T) {
	for _, h := range []holding.Holding{holding.MainHand, holding.OffHand} {
		_, err := combat.New(combat.Configuration{
			Attributes: fighter(), Primary: zweihander, Holding: h,
		}, rules())
		assert.ErrorIs(t, err, combat.ErrCanNotHoldItByOneHand)
	}
}

func TestNew_TwoHandedSecondItemFails(t *testing.T) {
	_, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: dagger, Holding: holding.MainHand, Second: zweihander, TwoWeapons: true,
	}, rules())
	assert.ErrorIs(t, err, combat.ErrCanNotHoldItByOneHand)
}

func TestNew_ImpossibleActionsAllReported(t *testing.T) {
	cfg := swordAndShield()
	cfg.Primary = mace
	cfg.Actions = actions(attackAction, parryAction, parryAction)
	_, err := combat.New(cfg, rules())
	require.Error(t, err)
	assert.ErrorIs(t, err, combat.ErrImpossibleActionsWithCurrentWeaponlike)

	var actErr *combat.ActionError
	require.True(t, errors.As(err, &actErr))
	assert.Equal(t, mace, actErr.Item)
	assert.Equal(t, []action.Action{parryAction, parryAction}, actErr.Actions)
}

func TestNew_RangedActionWithMeleeWeaponFails(t *testing.T) {
	cfg := swordAndShield()
	cfg.Actions = actions(aimAction)
	_, err := combat.New(cfg, rules())
	assert.ErrorIs(t, err, combat.ErrImpossibleActionsWithCurrentWeaponlike)
}

func TestNew_PrimaryTooHeavy(t *testing.T) {
	cfg := swordAndShield()
	cfg.Attributes = attrs{str: 11, agi: 12}
	_, err := combat.New(cfg, rules())
	require.Error(t, err)
	assert.ErrorIs(t, err, combat.ErrCanNotUseArmamentBecauseOfMissingStrength)

	var strErr *combat.StrengthError
	require.True(t, errors.As(err, &strErr))
	assert.Equal(t, sword, strErr.Item)
	assert.Equal(t, holding.MainHand, strErr.Holding)
	assert.Equal(t, 11, strErr.Strength)
}

func TestNew_SizeHelpsStrength(t *testing.T) {
	cfg := swordAndShield()
	cfg.Attributes = attrs{str: 11, agi: 12, siz: 1}
	_, err := combat.New(cfg, rules())
	assert.NoError(t, err)
}

func TestNew_ShieldTooHeavyForOffHand(t *testing.T) {
	_, err := combat.New(combat.Configuration{
		Attributes: attrs{str: 9, agi: 12},
		Primary:    dagger,
		Holding:    holding.MainHand,
		Second:     shield,
	}, rules())
	require.Error(t, err)

	var strErr *combat.StrengthError
	require.True(t, errors.As(err, &strErr))
	assert.Equal(t, shield, strErr.Item)
	assert.Equal(t, holding.OffHand, strErr.Holding)
	assert.Equal(t, 7, strErr.Strength)
}

func TestNew_ShieldNextToTwoHandedWeapon(t *testing.T) {
	_, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: sword, Holding: holding.TwoHands, Second: shield,
	}, rules())
	assert.ErrorIs(t, err, combat.ErrNoHandLeftForShield)
	assert.ErrorIs(t, err, holding.ErrNoHandLeftForShield)
}

func TestNew_OffHandPrimaryPutsShieldInMainHand(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: dagger, Holding: holding.OffHand, Second: shield,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, 13, r.PrimaryStrength())
	assert.Equal(t, holding.MainHand, r.SecondHolding())
	assert.Equal(t, 15, r.SecondStrength())
}

func TestNew_BareOffHandCountsWhenFightingWithTwoWeapons(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: dagger, Holding: holding.MainHand, TwoWeapons: true,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, holding.OffHand, r.SecondHolding())
	assert.Equal(t, 13, r.SecondStrength())
}

func TestNew_GuardOrder(t *testing.T) {
	// Every guard is violated; the two-weapons/two-hands guard wins.
	_, err := combat.New(combat.Configuration{
		Attributes: attrs{str: 1},
		Actions:    actions(aimAction),
		Primary:    dagger,
		Holding:    holding.TwoHands,
		Second:     shield,
		TwoWeapons: true,
	}, rules())
	var holdErr *combat.HoldingError
	require.True(t, errors.As(err, &holdErr))
	assert.True(t, holdErr.TwoWeapons)

	// Holding capability before actions.
	_, err = combat.New(combat.Configuration{
		Attributes: attrs{str: 1}, Actions: actions(aimAction), Primary: dagger, Holding: holding.TwoHands,
	}, rules())
	assert.ErrorIs(t, err, combat.ErrCanNotHoldItByTwoHands)

	// Actions before strength.
	_, err = combat.New(combat.Configuration{
		Attributes: attrs{str: 1}, Actions: actions(aimAction), Primary: dagger, Holding: holding.MainHand,
	}, rules())
	assert.ErrorIs(t, err, combat.ErrImpossibleActionsWithCurrentWeaponlike)
}

func TestNew_UnknownHoldingPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = combat.New(combat.Configuration{Attributes: fighter(), Primary: sword}, rules())
	})
}

func TestNew_MissingCollaboratorPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = combat.New(swordAndShield(), combat.Rules{})
	})
}

func TestResolver_FightNumber(t *testing.T) {
	r, err := combat.New(swordAndShield(), rules())
	require.NoError(t, err)
	// shield skill -1, sword length 2
	assert.Equal(t, 1, r.FightNumberModifier())
	assert.Equal(t, 12+3+1, r.FightNumber())
}

func TestResolver_FightNumber_ProtectivesAndStrength(t *testing.T) {
	cfg := swordAndShield()
	cfg.Attributes = attrs{str: 12, agi: 12, armor: mail, helm: helm}
	r, err := combat.New(cfg, rules())
	require.NoError(t, err)
	// sword deficit 2, shield at offhand 10 deficit 0, armor -1, helm -1,
	// shield -1, length 2
	assert.Equal(t, -2-1-1-1+2, r.FightNumberModifier())
}

func TestResolver_FightNumber_TwoWeapons(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(),
		Actions:    actions(attackAction),
		Primary:    sword,
		Holding:    holding.MainHand,
		Second:     dagger,
		TwoWeapons: true,
	}, rules())
	require.NoError(t, err)
	// two-weapon skill -2, length max(2, 0)
	assert.Equal(t, 0, r.FightNumberModifier())
}

func TestResolver_FightNumber_LongerSecondItemCounts(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: attrs{str: 20, agi: 12},
		Primary:    dagger,
		Holding:    holding.MainHand,
		Second:     sword,
		TwoWeapons: true,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, -2+2, r.FightNumberModifier())
}

func TestResolver_AttackNumber_Melee(t *testing.T) {
	cfg := swordAndShield()
	cfg.Actions = actions(attackAction, chargeAction)
	r, err := combat.New(cfg, rules())
	require.NoError(t, err)
	got, err := r.AttackNumber(1)
	require.NoError(t, err)
	// agility 12 / 2 + offensiveness 1 + attack 1 + charge 2
	assert.Equal(t, 6+1+1+2, got)

	// distance is irrelevant for melee
	far, err := r.AttackNumber(500)
	require.NoError(t, err)
	assert.Equal(t, got, far)
}

func TestResolver_AttackNumber_ShootingUsesKnack(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(),
		Actions:    actions(aimAction),
		Primary:    bow,
		Holding:    holding.TwoHands,
	}, rules())
	require.NoError(t, err)
	got, err := r.AttackNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 14/2+1+3, got)
}

func TestResolver_AttackNumber_ThrowingUsesAgility(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: javelin, Holding: holding.MainHand,
	}, rules())
	require.NoError(t, err)
	got, err := r.AttackNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 12/2, got)
}

func TestResolver_AttackNumber_DistanceModifier(t *testing.T) {
	cfg := combat.Configuration{
		Attributes: fighter(), Actions: actions(aimAction), Primary: bow, Holding: holding.TwoHands,
	}
	r, err := combat.New(cfg, rules())
	require.NoError(t, err)
	// encounter 20 + 15/5 = 23, maximal 46
	require.Equal(t, 23, r.EncounterRange())
	require.Equal(t, 46, r.MaximalRange())

	near, err := r.AttackNumber(10)
	require.NoError(t, err)
	beyond, err := r.AttackNumber(30)
	require.NoError(t, err)
	assert.Equal(t, near, beyond, "modifier is computed but not applied by default")

	_, err = r.AttackNumber(100)
	assert.ErrorIs(t, err, errOutOfRange)

	applying := rules()
	applying.ApplyDistanceModifier = true
	r2, err := combat.New(cfg, applying)
	require.NoError(t, err)
	beyond2, err := r2.AttackNumber(30)
	require.NoError(t, err)
	assert.Equal(t, near-2, beyond2)
	mod, err := r2.AttackNumberModifier(30)
	require.NoError(t, err)
	assert.Equal(t, 3-2, mod)
}

func TestResolver_BaseOfWounds(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(), Actions: actions(chargeAction), Primary: sword, Holding: holding.TwoHands,
	}, rules())
	require.NoError(t, err)
	// wounds 3 + 17/5, two-handed bonus 1, charge 1
	assert.Equal(t, 3+3+1+1, r.BaseOfWounds())
}

func TestResolver_BaseOfWounds_CrushAndTwoWeapons(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(),
		Actions:    actions(chargeAction),
		Primary:    mace,
		Holding:    holding.MainHand,
		Second:     dagger,
		TwoWeapons: true,
	}, rules())
	require.NoError(t, err)
	// wounds 3 + 15/5, two weapons -1, crushing charge 2
	assert.Equal(t, 3+3-1+2, r.BaseOfWounds())
}

func TestResolver_LoadingRoundsAndRanges(t *testing.T) {
	melee, err := combat.New(swordAndShield(), rules())
	require.NoError(t, err)
	assert.Equal(t, 0, melee.LoadingRounds())
	assert.Equal(t, 3, melee.EncounterRange())
	assert.Equal(t, melee.EncounterRange(), melee.MaximalRange())

	ranged, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: bow, Holding: holding.TwoHands,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, 1, ranged.LoadingRounds())

	thrown, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: javelin, Holding: holding.MainHand,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, 4+8/2, thrown.EncounterRange())
	assert.Equal(t, 16, thrown.MaximalRange())
}

func TestResolver_SizeCountsTowardShootingRange(t *testing.T) {
	a := fighter()
	a.siz = 5
	r, err := combat.New(combat.Configuration{
		Attributes: a, Primary: bow, Holding: holding.TwoHands,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, 20+(15+5)/5, r.EncounterRange())
	assert.Equal(t, 48, r.MaximalRange())
}

func TestResolver_DefenseCoverPathsAreIndependent(t *testing.T) {
	r, err := combat.New(swordAndShield(), rules())
	require.NoError(t, err)

	// base 12/2+2 = 8
	assert.Equal(t, 8, r.DefenseNumber(combat.CoverNone))
	second := r.DefenseNumber(combat.CoverSecond)
	primary := r.DefenseNumber(combat.CoverPrimary)
	assert.Equal(t, 8+3, second)
	assert.Equal(t, 8+1-1, primary)
	assert.NotEqual(t, second, primary)

	assert.Equal(t, second, r.DefenseNumber(combat.CoverSecond))
	assert.Equal(t, primary, r.DefenseNumber(combat.CoverPrimary))
	assert.Equal(t, 3, r.CoverModifier(combat.CoverSecond))
	assert.Equal(t, 0, r.CoverModifier(combat.CoverPrimary))
}

func TestResolver_CoverSecondWithoutSecondItem(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: sword, Holding: holding.TwoHands,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, 0, r.CoverModifier(combat.CoverSecond))
}

func TestResolver_CoverUnknownPanics(t *testing.T) {
	r, err := combat.New(swordAndShield(), rules())
	require.NoError(t, err)
	assert.Panics(t, func() { r.CoverModifier(combat.Cover(9)) })
}

func TestResolver_ShieldAsPrimaryUsesShieldSkill(t *testing.T) {
	r, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: shield, Holding: holding.MainHand,
	}, rules())
	require.NoError(t, err)
	// shield cover 3, shield skill malus 0 (weapon skill would be -1)
	assert.Equal(t, 3, r.CoverModifier(combat.CoverPrimary))
}

func TestResolver_DefenseAgainstFaster(t *testing.T) {
	cfg := swordAndShield()
	cfg.Actions = actions(parryAction)
	r, err := combat.New(cfg, rules())
	require.NoError(t, err)
	assert.Equal(t, 8+2, r.DefenseNumber(combat.CoverNone))
	assert.Equal(t, 8+1, r.DefenseNumberAgainstFaster(combat.CoverNone))
	assert.Equal(t, 8+1+3, r.DefenseNumberAgainstFaster(combat.CoverSecond))
}

func TestResolver_DefenseAgainstShooting(t *testing.T) {
	cfg := swordAndShield()
	cfg.Attributes = attrs{str: 15, agi: 12, siz: 1}
	r, err := combat.New(cfg, rules())
	require.NoError(t, err)
	assert.Equal(t, 8-1, r.DefenseAgainstShooting(combat.CoverNone))
	assert.Equal(t, 8+3-1, r.DefenseAgainstShooting(combat.CoverSecond))
	assert.Equal(t, 8-1+3, r.DefenseAgainstShootingPassiveShield())

	noShield, err := combat.New(combat.Configuration{
		Attributes: cfg.Attributes, Primary: sword, Holding: holding.TwoHands,
	}, rules())
	require.NoError(t, err)
	assert.Equal(t, noShield.DefenseAgainstShooting(combat.CoverNone), noShield.DefenseAgainstShootingPassiveShield())
}

func TestResolver_MovedDistance(t *testing.T) {
	still, err := combat.New(swordAndShield(), rules())
	require.NoError(t, err)
	assert.Equal(t, 0, still.MovedDistance())

	cfg := swordAndShield()
	cfg.Actions = actions(chargeAction)
	moving, err := combat.New(cfg, rules())
	require.NoError(t, err)
	assert.Equal(t, (8+4)*2, moving.MovedDistance())
}

func TestResolver_ConcurrentQueries(t *testing.T) {
	cfg := swordAndShield()
	cfg.Actions = actions(attackAction, parryAction)
	r, err := combat.New(cfg, rules())
	require.NoError(t, err)

	wantFight := r.FightNumber()
	wantDefense := r.DefenseNumber(combat.CoverSecond)
	wantAttack, err := r.AttackNumber(1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, wantFight, r.FightNumber())
			assert.Equal(t, wantDefense, r.DefenseNumber(combat.CoverSecond))
			got, err := r.AttackNumber(1)
			assert.NoError(t, err)
			assert.Equal(t, wantAttack, got)
		}()
	}
	wg.Wait()
}

func TestCover_String(t *testing.T) {
	assert.Equal(t, "none", combat.CoverNone.String())
	assert.Equal(t, "primary", combat.CoverPrimary.String())
	assert.Equal(t, "second", combat.CoverSecond.String())
	assert.Equal(t, "unknown", combat.Cover(7).String())
}

func TestErrors_Messages(t *testing.T) {
	_, err := combat.New(combat.Configuration{
		Attributes: fighter(), Primary: sword, Holding: holding.TwoHands, TwoWeapons: true,
	}, rules())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "long_sword")
	assert.Contains(t, err.Error(), "two_hands")
	assert.Contains(t, err.Error(), "two weapons")
}

// numbers holds every query of a resolver for comparison.
type numbers struct {
	primaryStrength, secondStrength int
	secondHolding                   holding.Holding
	fight, fightModifier            int
	attack, attackModifier          int
	attackErr, attackModifierErr    string
	wounds, loading                 int
	encounter, maximal, moved       int
	cover, defense, faster, shoot   [3]int
	passiveShield                   int
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func query(r *combat.Resolver, distance int) numbers {
	n := numbers{
		primaryStrength: r.PrimaryStrength(),
		secondStrength:  r.SecondStrength(),
		secondHolding:   r.SecondHolding(),
		fight:           r.FightNumber(),
		fightModifier:   r.FightNumberModifier(),
		wounds:          r.BaseOfWounds(),
		loading:         r.LoadingRounds(),
		encounter:       r.EncounterRange(),
		maximal:         r.MaximalRange(),
		moved:           r.MovedDistance(),
		passiveShield:   r.DefenseAgainstShootingPassiveShield(),
	}
	var err error
	n.attack, err = r.AttackNumber(distance)
	n.attackErr = errString(err)
	n.attackModifier, err = r.AttackNumberModifier(distance)
	n.attackModifierErr = errString(err)
	for i, c := range []combat.Cover{combat.CoverNone, combat.CoverPrimary, combat.CoverSecond} {
		n.cover[i] = r.CoverModifier(c)
		n.defense[i] = r.DefenseNumber(c)
		n.faster[i] = r.DefenseNumberAgainstFaster(c)
		n.shoot[i] = r.DefenseAgainstShooting(c)
	}
	return n
}

var (
	pool     = []equipment.Item{equipment.None, sword, zweihander, dagger, mace, shield, bow, javelin}
	holdings = []holding.Holding{holding.MainHand, holding.OffHand, holding.TwoHands}
)

func drawAttributes(rt *rapid.T) attrs {
	return attrs{
		str: rapid.IntRange(0, 25).Draw(rt, "strength"),
		agi: rapid.IntRange(0, 20).Draw(rt, "agility"),
		kna: rapid.IntRange(0, 20).Draw(rt, "knack"),
		spd: rapid.IntRange(0, 15).Draw(rt, "speed"),
		siz: rapid.IntRange(-3, 3).Draw(rt, "size"),
	}
}

// Property: building a resolver twice from the same inputs yields the same
// outcome and the same number for every query.
func TestProperty_Resolver_ReconstructionIsDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		candidates := []action.Action{attackAction, parryAction, chargeAction}
		if rapid.Bool().Draw(rt, "ranged") {
			candidates = []action.Action{attackAction, aimAction}
		}
		var chosen []action.Action
		for _, a := range candidates {
			if rapid.Bool().Draw(rt, string(a.Code)) {
				chosen = append(chosen, a)
			}
		}
		cfg := combat.Configuration{
			Attributes: drawAttributes(rt),
			Actions:    actions(chosen...),
			Primary:    rapid.SampledFrom(pool).Draw(rt, "primary"),
			Holding:    rapid.SampledFrom(holdings).Draw(rt, "holding"),
			Second:     rapid.SampledFrom(pool).Draw(rt, "second"),
			TwoWeapons: rapid.Bool().Draw(rt, "twoWeapons"),
			Profession: rapid.IntRange(0, 5).Draw(rt, "profession"),
		}
		distance := rapid.IntRange(0, 60).Draw(rt, "distance")

		first, err1 := combat.New(cfg, rules())
		second, err2 := combat.New(cfg, rules())
		if errString(err1) != errString(err2) {
			rt.Fatalf("construction differs: %v / %v", err1, err2)
		}
		if err1 != nil {
			return
		}
		if a, b := query(first, distance), query(second, distance); a != b {
			rt.Fatalf("queries differ:\n%+v\n%+v", a, b)
		}
	})
}

// Property: fighting with two weapons while holding the primary by two hands
// is rejected whatever the items and attributes.
func TestProperty_TwoWeaponsByTwoHandsAlwaysFails(t *testing.T) {
	damages := []equipment.DamageType{"", equipment.DamageCut, equipment.DamagePierce, equipment.DamageCrush}
	drawItem := func(rt *rapid.T, label string) equipment.Item {
		if rapid.Bool().Draw(rt, label+"Empty") {
			return equipment.None
		}
		return equipment.Item{
			Code:   equipment.Code(rapid.StringMatching(`[a-z_]{1,12}`).Draw(rt, label+"Code")),
			Caps:   equipment.Capability(rapid.Uint16Range(0, 1<<10-1).Draw(rt, label+"Caps")),
			Damage: rapid.SampledFrom(damages).Draw(rt, label+"Damage"),
		}
	}
	rapid.Check(t, func(rt *rapid.T) {
		primary := drawItem(rt, "primary")
		_, err := combat.New(combat.Configuration{
			Attributes: drawAttributes(rt),
			Actions:    actions(attackAction),
			Primary:    primary,
			Holding:    holding.TwoHands,
			Second:     drawItem(rt, "second"),
			TwoWeapons: true,
		}, rules())
		if !errors.Is(err, combat.ErrCanNotHoldItByTwoHands) {
			rt.Fatalf("%s: got %v", primary, err)
		}
		var holdErr *combat.HoldingError
		if !errors.As(err, &holdErr) || !holdErr.TwoWeapons || holdErr.Item != primary {
			rt.Fatalf("%s: unexpected holding error %#v", primary, err)
		}
	})
}
