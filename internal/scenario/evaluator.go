package scenario

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/combatsheet/internal/game/ruleset"
)

// Result pairs a scenario with its sheet or the reason it has none.
type Result struct {
	Scenario *Scenario
	Sheet    Sheet
	Err      error
}

// Evaluator builds and evaluates scenarios against one rule book.
// It is safe for concurrent use.
type Evaluator struct {
	rules  *ruleset.Rules
	opts   Options
	logger *zap.Logger
}

// NewEvaluator returns an Evaluator.
//
// Precondition: rules and logger are non-nil.
func NewEvaluator(rules *ruleset.Rules, opts Options, logger *zap.Logger) *Evaluator {
	if rules == nil || logger == nil {
		panic("scenario.NewEvaluator: precondition violated: rules and logger must be non-nil")
	}
	return &Evaluator{rules: rules, opts: opts, logger: logger}
}

// Evaluate builds s and reads its sheet at the scenario's distance.
func (e *Evaluator) Evaluate(s *Scenario) (Sheet, error) {
	log := e.logger.With(zap.String("scenario", s.ID), zap.String("name", s.Name))

	r, err := Build(s, e.rules, e.opts)
	if err != nil {
		log.Info("scenario rejected", zap.Error(err))
		return Sheet{}, fmt.Errorf("scenario %q: %w", s.ID, err)
	}
	sheet, err := Evaluate(r, s.Combat.Distance)
	if err != nil {
		log.Info("scenario distance rejected", zap.Int("distance", s.Combat.Distance), zap.Error(err))
		return Sheet{}, fmt.Errorf("scenario %q: %w", s.ID, err)
	}
	sheet.ScenarioID = s.ID
	sheet.Name = s.Name
	log.Debug("sheet computed",
		zap.Int("fight_number", sheet.FightNumber),
		zap.Int("attack_number", sheet.AttackNumber),
		zap.Int("base_of_wounds", sheet.BaseOfWounds),
	)
	return sheet, nil
}

// EvaluateAll evaluates scenarios with at most workers running at once.
// Results keep the input order; a rejected scenario carries its error in
// Result.Err and does not stop the others.
//
// Precondition: workers >= 1.
// Postcondition: err is non-nil only when ctx ends before every scenario ran.
func (e *Evaluator) EvaluateAll(ctx context.Context, scenarios []*Scenario, workers int) ([]Result, error) {
	if workers < 1 {
		panic("scenario.EvaluateAll: precondition violated: workers must be >= 1")
	}
	results := make([]Result, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sheet, err := e.Evaluate(s)
			results[i] = Result{Scenario: s, Sheet: sheet, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("evaluating scenarios: %w", err)
	}
	return results, nil
}
