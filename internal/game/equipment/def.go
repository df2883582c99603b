package equipment

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Kind constants for Def.Kind.
const (
	KindWeapon = "weapon"
	KindShield = "shield"
	KindArmor  = "armor"
	KindHelm   = "helm"
)

// Class constants for Def.Class.
const (
	ClassMelee    = "melee"
	ClassThrowing = "throwing"
	ClassShooting = "shooting"
)

// Handling constants for Def.Handling.
const (
	// HandlingOneHanded items are held by one hand only.
	HandlingOneHanded = "one_handed"
	// HandlingVersatile items are held by one or two hands.
	HandlingVersatile = "versatile"
	// HandlingTwoHanded items must be held by two hands.
	HandlingTwoHanded = "two_handed"
)

var validKinds = map[string]bool{KindWeapon: true, KindShield: true, KindArmor: true, KindHelm: true}

var validClasses = map[string]bool{ClassMelee: true, ClassThrowing: true, ClassShooting: true}

var validHandlings = map[string]bool{HandlingOneHanded: true, HandlingVersatile: true, HandlingTwoHanded: true}

var validDamageTypes = map[DamageType]bool{DamageCut: true, DamagePierce: true, DamageCrush: true}

// Def defines the static rule-book properties of an equipment item loaded from YAML.
type Def struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Class    string     `yaml:"class"`    // weapons and shields only
	Handling string     `yaml:"handling"` // weapons and shields only
	Damage   DamageType `yaml:"damage_type"`
	Weight   int        `yaml:"weight"`

	Length               int `yaml:"length"`
	Offensiveness        int `yaml:"offensiveness"`
	Cover                int `yaml:"cover"`
	Wounds               int `yaml:"wounds"`
	TwoHandedWoundsBonus int `yaml:"two_handed_wounds_bonus"`
	// MinStrength is the least strength the item can be used with at size 0.
	MinStrength int `yaml:"min_strength"`
	// FullStrength is the strength from which the item is used without malus.
	FullStrength int `yaml:"full_strength"`

	Skill      string `yaml:"skill"`
	SkillLevel int    `yaml:"skill_level"` // level required to use the item without malus

	Range         int  `yaml:"range"`        // encounter range base; ranged only
	RangeFactor   int  `yaml:"range_factor"` // maximal = encounter * factor; 0 = default
	IndirectFire  bool `yaml:"indirect_fire"`
	LoadingRounds int  `yaml:"loading_rounds"`

	Actions []string `yaml:"actions"`

	AgilityMalus int `yaml:"agility_malus"` // non-positive; protectives
	KnackMalus   int `yaml:"knack_malus"`   // non-positive; protectives
	SpeedMalus   int `yaml:"speed_malus"`   // non-positive; protectives
	SkillMalus   int `yaml:"skill_malus"`   // non-positive; fight number malus for wearing or bearing it
}

// IsHandHeld reports whether the def describes a weapon or a shield.
func (d *Def) IsHandHeld() bool {
	return d.Kind == KindWeapon || d.Kind == KindShield
}

// Validate checks that the Def satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid; otherwise every violation is listed.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("kind must be one of weapon, shield, armor, helm; got %q", d.Kind))
	}
	if d.IsHandHeld() {
		if !validClasses[d.Class] {
			errs = append(errs, fmt.Errorf("class must be one of melee, throwing, shooting; got %q", d.Class))
		}
		if !validHandlings[d.Handling] {
			errs = append(errs, fmt.Errorf("handling must be one of one_handed, versatile, two_handed; got %q", d.Handling))
		}
	}
	if d.Kind == KindWeapon && !validDamageTypes[d.Damage] {
		errs = append(errs, fmt.Errorf("damage_type must be one of cut, pierce, crush; got %q", d.Damage))
	}
	if d.Weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if d.Length < 0 {
		errs = append(errs, errors.New("length must be >= 0"))
	}
	if d.FullStrength != 0 && d.FullStrength < d.MinStrength {
		errs = append(errs, errors.New("full_strength must not be below min_strength"))
	}
	if (d.Class == ClassThrowing || d.Class == ClassShooting) && d.Range <= 0 {
		errs = append(errs, errors.New("ranged items need range > 0"))
	}
	if d.RangeFactor < 0 {
		errs = append(errs, errors.New("range_factor must be >= 0"))
	}
	if d.LoadingRounds < 0 {
		errs = append(errs, errors.New("loading_rounds must be >= 0"))
	}
	if d.AgilityMalus > 0 || d.KnackMalus > 0 || d.SpeedMalus > 0 || d.SkillMalus > 0 {
		errs = append(errs, errors.New("maluses must be <= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("equipment validation failed: %v", errs)
	}
	return nil
}

// Item derives the immutable capability value for the def.
//
// Precondition: d passed Validate.
func (d *Def) Item() Item {
	var caps Capability
	switch d.Kind {
	case KindWeapon:
		caps |= CapWeapon
	case KindShield:
		caps |= CapShield
	case KindArmor:
		caps |= CapArmor
	case KindHelm:
		caps |= CapHelm
	}
	if d.IsHandHeld() {
		switch d.Class {
		case ClassMelee:
			caps |= CapMelee
		case ClassThrowing:
			caps |= CapThrowing
		case ClassShooting:
			caps |= CapShooting
		}
		switch d.Handling {
		case HandlingOneHanded:
			caps |= CapOneHand
		case HandlingVersatile:
			caps |= CapOneHand | CapTwoHands
		case HandlingTwoHanded:
			caps |= CapTwoHands
		}
	}
	if d.IndirectFire {
		caps |= CapIndirectFire
	}
	return Item{Code: Code(d.ID), Caps: caps, Damage: d.Damage}
}

// LoadDefs reads all *.yaml and *.yml files from dir, parses each as a Def
// with unknown fields rejected, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Defs or the first encountered error.
func LoadDefs(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDefs: cannot read directory %q: %w", dir, err)
	}

	defs := []*Def{}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot read file %q: %w", path, err)
		}
		var d Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadDefs: invalid item in %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}
