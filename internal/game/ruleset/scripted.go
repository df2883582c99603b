package ruleset

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/combatsheet/internal/game/action"
	"github.com/cory-johannsen/combatsheet/internal/game/combat"
)

// Hook names a house-rule script can define. Each receives the array of
// chosen action codes; HookBaseOfWounds also receives the crush flag.
const (
	HookFightNumber                = "fight_number"
	HookAttackNumber               = "attack_number"
	HookDefenseNumber              = "defense_number"
	HookDefenseNumberAgainstFaster = "defense_number_against_faster"
	HookBaseOfWounds               = "base_of_wounds"
	HookSpeed                      = "speed"
)

// Hooks calls numeric script hooks; *scripting.Manager implements it.
type Hooks interface {
	CallNumber(hook string, args ...any) (int, bool, error)
}

// ScriptedEffects adds house-rule hook results to a base ActionEffects.
// A failing hook adds nothing and is logged.
type ScriptedEffects struct {
	base   combat.ActionEffects
	hooks  Hooks
	logger *zap.Logger
}

// NewScriptedEffects wraps base with hooks.
//
// Precondition: base, hooks and logger are non-nil.
func NewScriptedEffects(base combat.ActionEffects, hooks Hooks, logger *zap.Logger) *ScriptedEffects {
	if base == nil || hooks == nil || logger == nil {
		panic("ruleset.NewScriptedEffects: precondition violated: base, hooks and logger must be non-nil")
	}
	return &ScriptedEffects{base: base, hooks: hooks, logger: logger}
}

func (e *ScriptedEffects) call(hook string, s action.Set, extra ...any) int {
	codes := make([]string, 0, s.Len())
	for a := range s.All() {
		codes = append(codes, string(a.Code))
	}
	n, ok, err := e.hooks.CallNumber(hook, append([]any{codes}, extra...)...)
	if err != nil {
		e.logger.Warn("house rule ignored",
			zap.String("hook", hook),
			zap.Strings("actions", codes),
			zap.Error(err),
		)
		return 0
	}
	if !ok {
		return 0
	}
	return n
}

// FightNumber implements combat.ActionEffects.
func (e *ScriptedEffects) FightNumber(s action.Set) int {
	return e.base.FightNumber(s) + e.call(HookFightNumber, s)
}

// AttackNumber implements combat.ActionEffects.
func (e *ScriptedEffects) AttackNumber(s action.Set) int {
	return e.base.AttackNumber(s) + e.call(HookAttackNumber, s)
}

// DefenseNumber implements combat.ActionEffects.
func (e *ScriptedEffects) DefenseNumber(s action.Set) int {
	return e.base.DefenseNumber(s) + e.call(HookDefenseNumber, s)
}

// DefenseNumberAgainstFaster implements combat.ActionEffects.
func (e *ScriptedEffects) DefenseNumberAgainstFaster(s action.Set) int {
	return e.base.DefenseNumberAgainstFaster(s) + e.call(HookDefenseNumberAgainstFaster, s)
}

// BaseOfWounds implements combat.ActionEffects.
func (e *ScriptedEffects) BaseOfWounds(s action.Set, crush bool) int {
	return e.base.BaseOfWounds(s, crush) + e.call(HookBaseOfWounds, s, crush)
}

// Speed implements combat.ActionEffects.
func (e *ScriptedEffects) Speed(s action.Set) int {
	return e.base.Speed(s) + e.call(HookSpeed, s)
}
