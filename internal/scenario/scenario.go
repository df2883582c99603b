// Package scenario describes a character's combat choice in YAML and turns it
// into a validated combat resolver and a sheet of combat numbers.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/combatsheet/internal/game/holding"
)

// Character holds base attributes, worn gear and skills.
type Character struct {
	Strength    int            `yaml:"strength"`
	Agility     int            `yaml:"agility"`
	Knack       int            `yaml:"knack"`
	Speed       int            `yaml:"speed"`
	Size        int            `yaml:"size"`
	Profession  int            `yaml:"profession"`
	CargoWeight int            `yaml:"cargo_weight"`
	Armor       string         `yaml:"armor"`
	Helm        string         `yaml:"helm"`
	Skills      map[string]int `yaml:"skills"`
}

// Combat holds the held items and the chosen actions.
type Combat struct {
	Primary    string          `yaml:"primary"`
	Holding    holding.Holding `yaml:"holding"`
	Second     string          `yaml:"second"`
	TwoWeapons bool            `yaml:"two_weapons"`
	Actions    []string        `yaml:"actions"`
	// Distance is the target distance used for the attack number.
	Distance int `yaml:"distance"`
}

// Scenario is one character in one combat configuration.
//
// Precondition: Name is non-empty and Combat.Holding is set after loading.
type Scenario struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Character Character `yaml:"character"`
	Combat    Combat    `yaml:"combat"`
}

// Validate checks the scenario, listing all violations.
func (s *Scenario) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.Combat.Holding == holding.Unknown {
		errs = append(errs, errors.New("combat.holding must be one of main_hand, off_hand, two_hands"))
	}
	if s.Combat.Distance < 0 {
		errs = append(errs, errors.New("combat.distance must be >= 0"))
	}
	if s.Character.CargoWeight < 0 {
		errs = append(errs, errors.New("character.cargo_weight must be >= 0"))
	}
	for skill, level := range s.Character.Skills {
		if level < 0 {
			errs = append(errs, fmt.Errorf("character.skills.%s must be >= 0", skill))
		}
	}
	return errors.Join(errs...)
}

// Parse decodes and validates one scenario, rejecting unknown fields.
// A missing id is replaced by a random UUID.
//
// Postcondition: returns a valid *Scenario with a non-empty ID or a non-nil error.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", s.ID, err)
	}
	return &s, nil
}

// Load reads and parses the scenario file at path.
//
// Precondition: path names a readable file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadDir loads every *.yaml and *.yml file in dir, sorted by file name.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all scenarios (may be empty slice) or the first error.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	out := make([]*Scenario, 0, len(paths))
	ids := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := ids[s.ID]; dup {
			return nil, fmt.Errorf("%s: scenario id %q already used by %s", path, s.ID, prev)
		}
		ids[s.ID] = path
		out = append(out, s)
	}
	return out, nil
}
