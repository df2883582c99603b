package ruleset

import (
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
	"github.com/cory-johannsen/combatsheet/internal/game/equipment"
)

// Proficiencies maps skill ids to the bearer's level in them.
// A missing skill is level 0.
type Proficiencies map[string]int

// Level returns the bearer's level in skill.
func (p Proficiencies) Level(skill string) int { return p[skill] }

// Missing returns how many levels the bearer lacks to reach required, never negative.
func (p Proficiencies) Missing(skill string, required int) int {
	if skill == "" {
		return 0
	}
	return max(0, required-p.Level(skill))
}

type skills struct {
	r *Rules
	p Proficiencies
}

// Skills returns the skill rules bound to a bearer's proficiencies.
func (r *Rules) Skills(p Proficiencies) combat.SkillRules { return skills{r: r, p: p} }

func (s skills) missing(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	d := s.r.def(item)
	return s.p.Missing(d.Skill, d.SkillLevel)
}

func (s skills) twoWeaponsMissing() int {
	tw := s.r.tables.TwoWeapons
	if tw.Skill == "" {
		return tw.Level
	}
	return s.p.Missing(tw.Skill, tw.Level)
}

func (s skills) FightNumberMalus(weapon equipment.Item, twoWeapons bool) int {
	m := s.r.tables.MissingSkill.Fight.Lookup(s.missing(weapon))
	if twoWeapons {
		m += s.r.tables.TwoWeapons.Fight.Lookup(s.twoWeaponsMissing())
	}
	return m
}

// ProtectiveFightNumberMalus returns the item's fight number malus reduced by
// one per level the bearer has in the item's skill, never positive.
func (s skills) ProtectiveFightNumberMalus(item equipment.Item) int {
	if item.IsEmpty() {
		return 0
	}
	d := s.r.def(item)
	if d.Skill == "" {
		return d.SkillMalus
	}
	return min(0, d.SkillMalus+s.p.Level(d.Skill))
}

func (s skills) AttackNumberMalus(weapon equipment.Item, twoWeapons bool) int {
	m := s.r.tables.MissingSkill.Attack.Lookup(s.missing(weapon))
	if twoWeapons {
		m += s.r.tables.TwoWeapons.Attack.Lookup(s.twoWeaponsMissing())
	}
	return m
}

func (s skills) WeaponCoverMalus(weapon equipment.Item) int {
	return s.r.tables.MissingSkill.Cover.Lookup(s.missing(weapon))
}

func (s skills) ShieldCoverMalus(shield equipment.Item) int {
	return s.r.tables.MissingSkill.Cover.Lookup(s.missing(shield))
}

func (s skills) BaseOfWoundsMalus(weapon equipment.Item, twoWeapons bool) int {
	m := s.r.tables.MissingSkill.Wounds.Lookup(s.missing(weapon))
	if twoWeapons {
		m += s.r.tables.TwoWeapons.Wounds.Lookup(s.twoWeaponsMissing())
	}
	return m
}
