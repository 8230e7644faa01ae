package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cflreach/internal/config"
	"github.com/katalvlaran/cflreach/internal/loader"
	"github.com/katalvlaran/cflreach/saturate"
	"github.com/katalvlaran/cflreach/store"
)

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	start := time.Now()

	grammarFile, err := os.Open(cfg.GrammarFilepath)
	if err != nil {
		return fmt.Errorf("cflreach: opening grammar file: %w", err)
	}
	idx, err := loader.LoadGrammar(grammarFile)
	_ = grammarFile.Close()
	if err != nil {
		return err
	}

	graphFile, err := os.Open(cfg.GraphFilepath)
	if err != nil {
		return fmt.Errorf("cflreach: opening graph file: %w", err)
	}
	edges, n, err := loader.LoadGraph(graphFile, idx)
	_ = graphFile.Close()
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"phase":    "load",
		"vertices": n,
		"edges":    len(edges),
		"symbols":  idx.NumSymbols(),
	}).Info("loaded grammar and graph")

	dir := directionFromConfig(cfg.TraversalDirection)
	policy := policyFromConfig(cfg.ProcessingStrategy)
	initialCount := len(edges)

	var newEdgeCount, sweeps int
	if cfg.ExecutionMode == config.ExecutionParallel {
		strat := saturate.NewParallel(idx, n, dir, policy, cfg.NumThreads, saturate.DefaultBlockSize)
		for _, e := range edges {
			strat.AddInitialEdge(e.From, e.To, e.Label)
		}
		sweeps, err = strat.Run(ctx)
		if err != nil {
			return fmt.Errorf("cflreach: parallel saturation: %w", err)
		}
		newEdgeCount = strat.Store().EdgeCount() - initialCount
	} else {
		strat := saturate.New(idx, n, dir, policy)
		for _, e := range edges {
			strat.AddInitialEdge(e.From, e.To, e.Label)
		}
		sweeps = strat.Run()
		newEdgeCount = strat.Store().EdgeCount() - initialCount
	}

	elapsed := time.Since(start)
	logger.WithFields(logrus.Fields{
		"phase":          "done",
		"sweeps":         sweeps,
		"initial_edges":  initialCount,
		"new_edges":      newEdgeCount,
		"wall_time_ms":   elapsed.Milliseconds(),
		"execution_mode": cfg.ExecutionMode,
		"direction":      cfg.TraversalDirection,
		"strategy":       cfg.ProcessingStrategy,
	}).Info("saturation complete")

	fmt.Printf("initial edges: %d\nnew edges: %d\nwall time: %s\n", initialCount, newEdgeCount, elapsed)

	return nil
}

func directionFromConfig(s string) store.Direction {
	switch s {
	case config.DirectionForward:
		return store.Out
	case config.DirectionBackward:
		return store.In
	default:
		return store.Bi
	}
}

func policyFromConfig(s string) saturate.Policy {
	if s == config.StrategyTopoDriven {
		return saturate.TopoDriven
	}

	return saturate.GramDriven
}
