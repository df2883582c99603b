// Package main provides the combatsheet binary that computes combat sheets
// for scenario files and prints them as YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/combatsheet/internal/config"
	"github.com/cory-johannsen/combatsheet/internal/game/ruleset"
	"github.com/cory-johannsen/combatsheet/internal/observability"
	"github.com/cory-johannsen/combatsheet/internal/scenario"
	"github.com/cory-johannsen/combatsheet/internal/scripting"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run evaluates the scenarios named by args, writes their sheets to stdout
// and returns the process exit code. Every deferred cleanup has run by the
// time it returns.
func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	fs := flag.NewFlagSet("combatsheet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file; empty = defaults and COMBATSHEET_ environment")
	scenarioPath := fs.String("scenario", "", "path to a single scenario YAML file")
	scenarioDir := fs.String("scenarios", "content/scenarios", "directory of scenario YAML files, used when -scenario is empty")
	distance := fs.Int("distance", -1, "target distance overriding every scenario's; -1 = keep")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "initializing logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	rules, err := ruleset.Load(cfg.Rules.Dir)
	if err != nil {
		logger.Error("loading rules", zap.String("dir", cfg.Rules.Dir), zap.Error(err))
		return 1
	}
	logger.Info("rules loaded",
		zap.String("dir", cfg.Rules.Dir),
		zap.Int("items", len(rules.Items().All())),
		zap.Int("actions", len(rules.ActionDefs())),
	)

	opts := scenario.Options{ApplyDistanceModifier: cfg.Rules.ApplyDistanceModifier}
	if cfg.Rules.ScriptDir != "" {
		scripts := scripting.NewManager(cfg.Rules.InstructionLimit, logger)
		defer scripts.Close()
		if err := scripts.Load(cfg.Rules.ScriptDir); err != nil {
			logger.Error("loading house rules", zap.String("dir", cfg.Rules.ScriptDir), zap.Error(err))
			return 1
		}
		opts.Effects = ruleset.NewScriptedEffects(rules.Effects(), scripts, logger)
	}

	var scenarios []*scenario.Scenario
	if *scenarioPath != "" {
		s, err := scenario.Load(*scenarioPath)
		if err != nil {
			logger.Error("loading scenario", zap.Error(err))
			return 1
		}
		scenarios = append(scenarios, s)
	} else {
		scenarios, err = scenario.LoadDir(*scenarioDir)
		if err != nil {
			logger.Error("loading scenarios", zap.Error(err))
			return 1
		}
	}
	if *distance >= 0 {
		for _, s := range scenarios {
			s.Combat.Distance = *distance
		}
	}

	eval := scenario.NewEvaluator(rules, opts, logger)
	results, err := eval.EvaluateAll(ctx, scenarios, cfg.Evaluation.Workers)
	if err != nil {
		logger.Error("evaluating scenarios", zap.Error(err))
		return 1
	}

	failed := 0
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", res.Scenario.Name, res.Err)
			continue
		}
		if err := enc.Encode(res.Sheet); err != nil {
			logger.Error("writing sheet", zap.Error(err))
			return 1
		}
	}
	if err := enc.Close(); err != nil {
		logger.Error("writing sheets", zap.Error(err))
		return 1
	}

	logger.Info("scenarios evaluated",
		zap.Int("total", len(results)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	if failed > 0 {
		return 1
	}
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadFromViper(config.New())
	}
	return config.Load(path)
}
