package ruleset

import (
	"slices"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
)

type compatibility struct{ r *Rules }

// Compatibility returns the action compatibility rules: two actions can be
// combined unless either lists the other as incompatible. Unknown codes are
// compatible with everything.
func (r *Rules) Compatibility() action.Compatibility { return compatibility{r} }

func (c compatibility) CanCombine(a, b action.Action) bool {
	return !c.lists(a.Code, b.Code) && !c.lists(b.Code, a.Code)
}

func (c compatibility) lists(a, b action.Code) bool {
	d, ok := c.r.actions[a]
	return ok && slices.Contains(d.Incompatible, string(b))
}

type effects struct{ r *Rules }

// Effects returns the table action effects. Every occurrence of an action
// in a set counts.
func (r *Rules) Effects() combat.ActionEffects { return effects{r} }

func (e effects) sum(s action.Set, pick func(ActionEffect) int) int {
	total := 0
	for a := range s.All() {
		if d, ok := e.r.actions[a.Code]; ok {
			total += pick(d.Effects)
		}
	}
	return total
}

func (e effects) FightNumber(s action.Set) int {
	return e.sum(s, func(x ActionEffect) int { return x.Fight })
}

func (e effects) AttackNumber(s action.Set) int {
	return e.sum(s, func(x ActionEffect) int { return x.Attack })
}

func (e effects) DefenseNumber(s action.Set) int {
	return e.sum(s, func(x ActionEffect) int { return x.Defense })
}

func (e effects) DefenseNumberAgainstFaster(s action.Set) int {
	return e.sum(s, func(x ActionEffect) int { return x.DefenseAgainstFaster })
}

func (e effects) BaseOfWounds(s action.Set, crush bool) int {
	return e.sum(s, func(x ActionEffect) int { return x.woundsFor(crush) })
}

func (e effects) Speed(s action.Set) int {
	return e.sum(s, func(x ActionEffect) int { return x.Speed })
}

type formulas struct{ t *Tables }

// Formulas returns the table-driven base number formulas.
func (r *Rules) Formulas() combat.Formulas { return formulas{r.tables} }

// BaseFightNumber looks agility up and adds profession and size.
func (f formulas) BaseFightNumber(agility, profession, size int) int {
	return f.t.BaseFightNumber.Lookup(agility) + profession + size
}

func (f formulas) AttackFromAgility(agility int) int  { return f.t.AttackFromAgility.Lookup(agility) }
func (f formulas) ShootingFromKnack(knack int) int    { return f.t.ShootingFromKnack.Lookup(knack) }
func (f formulas) DefenseFromAgility(agility int) int { return f.t.DefenseFromAgility.Lookup(agility) }

// DefenseAgainstShooting adjusts defense by how easy a target the bearer's size makes.
func (f formulas) DefenseAgainstShooting(defense, size int) int {
	return defense + f.t.ShootingTargetSize.Lookup(size)
}

func (f formulas) MovedDistance(speed int) int { return f.t.MovementDistance.Lookup(speed) }
