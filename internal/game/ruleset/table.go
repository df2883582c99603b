package ruleset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Step is one threshold of a Table: inputs at or above Min map to Value.
type Step struct {
	Min   int `yaml:"min"`
	Value int `yaml:"value"`
}

// Table is a step function over integer inputs.
type Table []Step

// Lookup returns the value of the highest step whose Min is <= x. Inputs
// below every step take the first step's value; an empty table yields 0.
//
// Precondition: t is sorted by Min (Validate and LoadTables ensure it).
func (t Table) Lookup(x int) int {
	if len(t) == 0 {
		return 0
	}
	i := sort.Search(len(t), func(i int) bool { return t[i].Min > x })
	if i == 0 {
		return t[0].Value
	}
	return t[i-1].Value
}

// Validate reports every duplicated or unsorted threshold.
func (t Table) Validate() error {
	var errs []error
	for i := 1; i < len(t); i++ {
		if t[i].Min <= t[i-1].Min {
			errs = append(errs, fmt.Errorf("thresholds must be strictly ascending; %d follows %d", t[i].Min, t[i-1].Min))
		}
	}
	return errors.Join(errs...)
}

// StrengthMalus holds the maluses for strength below an item's full
// strength, keyed by the missing points.
type StrengthMalus struct {
	Fight   Table `yaml:"fight"`
	Attack  Table `yaml:"attack"`
	Defense Table `yaml:"defense"`
}

// MissingSkill holds the maluses for missing weapon skill levels.
type MissingSkill struct {
	Fight  Table `yaml:"fight"`
	Attack Table `yaml:"attack"`
	Cover  Table `yaml:"cover"`
	Wounds Table `yaml:"wounds"`
}

// TwoWeapons holds the two-weapon fighting maluses, keyed by the missing
// levels of Skill below Level.
type TwoWeapons struct {
	Skill  string `yaml:"skill"`
	Level  int    `yaml:"level"`
	Fight  Table  `yaml:"fight"`
	Attack Table  `yaml:"attack"`
	Wounds Table  `yaml:"wounds"`
}

// Tables are the numeric rule-book tables shared by every item and action.
type Tables struct {
	BaseFightNumber         Table `yaml:"base_fight_number"`
	AttackFromAgility       Table `yaml:"attack_from_agility"`
	ShootingFromKnack       Table `yaml:"shooting_from_knack"`
	DefenseFromAgility      Table `yaml:"defense_from_agility"`
	ShootingTargetSize      Table `yaml:"shooting_target_size"`
	StrengthWounds          Table `yaml:"strength_wounds"`
	ThrownRangeBySpeed      Table `yaml:"thrown_range_by_speed"`
	ShootingRangeByStrength Table `yaml:"shooting_range_by_strength"`
	// DistanceModifier is keyed by the target distance in percent of the
	// encounter range.
	DistanceModifier Table `yaml:"distance_modifier"`
	MovementDistance Table `yaml:"movement_distance"`
	// LoadMalus is keyed by load minus strength.
	LoadMalus Table `yaml:"load_malus"`

	StrengthMalus StrengthMalus `yaml:"strength_malus"`
	MissingSkill  MissingSkill  `yaml:"missing_skill"`
	TwoWeapons    TwoWeapons    `yaml:"two_weapons"`

	// DefaultRangeFactor expands encounter into maximal range for ranged
	// items that set no range_factor.
	DefaultRangeFactor int `yaml:"default_range_factor"`
	// IndirectFireFactor further expands the maximal range of items usable
	// for indirect fire.
	IndirectFireFactor int `yaml:"indirect_fire_factor"`
	// BareHandActions are the actions possible with an empty primary hand.
	BareHandActions []string `yaml:"bare_hand_actions"`
}

func (t *Tables) named() map[string]Table {
	return map[string]Table{
		"base_fight_number":          t.BaseFightNumber,
		"attack_from_agility":        t.AttackFromAgility,
		"shooting_from_knack":        t.ShootingFromKnack,
		"defense_from_agility":       t.DefenseFromAgility,
		"shooting_target_size":       t.ShootingTargetSize,
		"strength_wounds":            t.StrengthWounds,
		"thrown_range_by_speed":      t.ThrownRangeBySpeed,
		"shooting_range_by_strength": t.ShootingRangeByStrength,
		"distance_modifier":          t.DistanceModifier,
		"movement_distance":          t.MovementDistance,
		"load_malus":                 t.LoadMalus,
		"strength_malus.fight":       t.StrengthMalus.Fight,
		"strength_malus.attack":      t.StrengthMalus.Attack,
		"strength_malus.defense":     t.StrengthMalus.Defense,
		"missing_skill.fight":        t.MissingSkill.Fight,
		"missing_skill.attack":       t.MissingSkill.Attack,
		"missing_skill.cover":        t.MissingSkill.Cover,
		"missing_skill.wounds":       t.MissingSkill.Wounds,
		"two_weapons.fight":          t.TwoWeapons.Fight,
		"two_weapons.attack":         t.TwoWeapons.Attack,
		"two_weapons.wounds":         t.TwoWeapons.Wounds,
	}
}

// Validate checks every table and the scalar settings, listing all violations.
func (t *Tables) Validate() error {
	var errs []error
	named := t.named()
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := named[name].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if t.DefaultRangeFactor < 1 {
		errs = append(errs, errors.New("default_range_factor must be >= 1"))
	}
	if t.IndirectFireFactor < 1 {
		errs = append(errs, errors.New("indirect_fire_factor must be >= 1"))
	}
	if t.TwoWeapons.Level < 0 {
		errs = append(errs, errors.New("two_weapons.level must be >= 0"))
	}
	return errors.Join(errs...)
}

// LoadTables reads and validates the rule tables at path.
//
// Precondition: path names a readable YAML file.
// Postcondition: returns valid Tables or a non-nil error.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t := Tables{DefaultRangeFactor: 2, IndirectFireFactor: 2}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parsing tables file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tables in %s: %w", path, err)
	}
	return &t, nil
}
