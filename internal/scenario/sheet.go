package scenario

import (
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

// Defense lists a defense number for each cover choice.
type Defense struct {
	None    int `yaml:"none"`
	Primary int `yaml:"primary"`
	Second  int `yaml:"second"`
}

// Sheet is every combat number derived for one scenario.
type Sheet struct {
	ScenarioID string `yaml:"scenario_id"`
	Name       string `yaml:"name"`

	Strength        int             `yaml:"strength"`
	OffhandStrength int             `yaml:"offhand_strength"`
	Agility         int             `yaml:"agility"`
	Knack           int             `yaml:"knack"`
	Speed           int             `yaml:"speed"`
	PrimaryStrength int             `yaml:"primary_strength"`
	SecondHolding   holding.Holding `yaml:"second_holding,omitempty"`
	SecondStrength  int             `yaml:"second_strength,omitempty"`

	FightNumber          int `yaml:"fight_number"`
	FightNumberModifier  int `yaml:"fight_number_modifier"`
	Distance             int `yaml:"distance"`
	AttackNumber         int `yaml:"attack_number"`
	AttackNumberModifier int `yaml:"attack_number_modifier"`
	BaseOfWounds         int `yaml:"base_of_wounds"`

	LoadingRounds  int `yaml:"loading_rounds"`
	EncounterRange int `yaml:"encounter_range"`
	MaximalRange   int `yaml:"maximal_range"`

	Defense                             Defense `yaml:"defense"`
	DefenseAgainstFaster                Defense `yaml:"defense_against_faster"`
	DefenseAgainstShooting              Defense `yaml:"defense_against_shooting"`
	DefenseAgainstShootingPassiveShield int     `yaml:"defense_against_shooting_passive_shield"`

	MovedDistance int `yaml:"moved_distance"`
}

func defenses(f func(combat.Cover) int) Defense {
	return Defense{
		None:    f(combat.CoverNone),
		Primary: f(combat.CoverPrimary),
		Second:  f(combat.CoverSecond),
	}
}

// Evaluate reads every number off r for a target at distance.
//
// Precondition: r is non-nil.
// Postcondition: the only possible error is the rules' rejection of distance.
func Evaluate(r *combat.Resolver, distance int) (Sheet, error) {
	attackMod, err := r.AttackNumberModifier(distance)
	if err != nil {
		return Sheet{}, err
	}
	attack, err := r.AttackNumber(distance)
	if err != nil {
		return Sheet{}, err
	}
	attrs := r.Configuration().Attributes
	return Sheet{
		Strength:        attrs.Strength(),
		OffhandStrength: attrs.OffhandStrength(),
		Agility:         attrs.Agility(),
		Knack:           attrs.Knack(),
		Speed:           attrs.Speed(),
		PrimaryStrength: r.PrimaryStrength(),
		SecondHolding:   r.SecondHolding(),
		SecondStrength:  r.SecondStrength(),

		FightNumber:          r.FightNumber(),
		FightNumberModifier:  r.FightNumberModifier(),
		Distance:             distance,
		AttackNumber:         attack,
		AttackNumberModifier: attackMod,
		BaseOfWounds:         r.BaseOfWounds(),

		LoadingRounds:  r.LoadingRounds(),
		EncounterRange: r.EncounterRange(),
		MaximalRange:   r.MaximalRange(),

		Defense:                             defenses(r.DefenseNumber),
		DefenseAgainstFaster:                defenses(r.DefenseNumberAgainstFaster),
		DefenseAgainstShooting:              defenses(r.DefenseAgainstShooting),
		DefenseAgainstShootingPassiveShield: r.DefenseAgainstShootingPassiveShield(),

		MovedDistance: r.MovedDistance(),
	}, nil
}
