package ruleset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
)

// ActionEffect lists what an action adds to the combat numbers.
type ActionEffect struct {
	Fight                int `yaml:"fight"`
	Attack               int `yaml:"attack"`
	Defense              int `yaml:"defense"`
	DefenseAgainstFaster int `yaml:"defense_against_faster"`
	Wounds               int `yaml:"wounds"`
	// WoundsCrush replaces Wounds for crushing weapons; nil means Wounds applies.
	WoundsCrush *int `yaml:"wounds_crush"`
	Speed       int  `yaml:"speed"`
}

// woundsFor returns the wound effect for the weapon's damage type.
func (e ActionEffect) woundsFor(crush bool) int {
	if crush && e.WoundsCrush != nil {
		return *e.WoundsCrush
	}
	return e.Wounds
}

// ActionDef defines a combat action loaded from YAML.
//
// Precondition: ID and Name must be non-empty after loading.
type ActionDef struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Scope        action.Scope `yaml:"scope"`
	Effects      ActionEffect `yaml:"effects"`
	Incompatible []string     `yaml:"incompatible"`
}

// Action returns the action value for the def.
func (d *ActionDef) Action() action.Action {
	return action.Action{Code: action.Code(d.ID), Scope: d.Scope}
}

// Validate checks the def, listing all violations.
func (d *ActionDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	for _, other := range d.Incompatible {
		if other == "" {
			errs = append(errs, errors.New("incompatible must not list an empty id"))
		}
	}
	return errors.Join(errs...)
}

// LoadActions reads all .yaml files in dir and parses each as an ActionDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed, valid defs (may be empty slice) or a non-nil error.
func LoadActions(dir string) ([]*ActionDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*ActionDef, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var d ActionDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parsing action file %s: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid action in %s: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
