package config

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Execution modes (spec.md §6 "executionMode").
const (
	ExecutionSerial   = "serial"
	ExecutionParallel = "parallel"
)

// Traversal directions (spec.md §6 "traversalDirection").
const (
	DirectionForward  = "fw"
	DirectionBackward = "bw"
	DirectionBoth     = "bi"
)

// Processing strategies (spec.md §6 "processingStrategy").
const (
	StrategyGramDriven = "gram-driven"
	StrategyTopoDriven = "topo-driven"
)

// Config is the driver's fully resolved, validated configuration.
type Config struct {
	GraphFilepath      string
	GrammarFilepath    string
	ExecutionMode      string
	TraversalDirection string
	ProcessingStrategy string
	NumThreads         int
}

// fileConfig mirrors Config's fields for TOML decoding; every field is a
// pointer so an absent key in the file is distinguishable from an
// explicit zero value.
type fileConfig struct {
	GraphFilepath      *string `toml:"graphFilepath"`
	GrammarFilepath    *string `toml:"grammarFilepath"`
	ExecutionMode      *string `toml:"executionMode"`
	TraversalDirection *string `toml:"traversalDirection"`
	ProcessingStrategy *string `toml:"processingStrategy"`
	NumThreads         *int    `toml:"numThreads"`
}

// RegisterFlags binds the spec.md §6 configuration table's keys onto fs
// with their documented defaults, for a cobra command's flag set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("graph", "", "path to the input graph file (required)")
	fs.String("grammar", "", "path to the input grammar file (required)")
	fs.String("config", "", "path to an optional TOML config file")
	fs.String("execution-mode", ExecutionSerial, "serial or parallel")
	fs.String("direction", "", "fw, bw, or bi (default: bi for serial, fw for parallel)")
	fs.String("strategy", StrategyGramDriven, "gram-driven or topo-driven")
	fs.Int("threads", runtime.NumCPU(), "worker pool size in parallel mode")
}

// Resolve layers a TOML file's values (if configPath is non-empty) under
// fs's flags, CLI flags always winning (spec.md §6), applies the
// direction default that depends on executionMode, and validates the
// result.
func Resolve(fs *pflag.FlagSet, configPath string) (*Config, error) {
	var fc fileConfig
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	cfg := &Config{
		ExecutionMode:      ExecutionSerial,
		ProcessingStrategy: StrategyGramDriven,
		NumThreads:         runtime.NumCPU(),
	}
	if fc.GraphFilepath != nil {
		cfg.GraphFilepath = *fc.GraphFilepath
	}
	if fc.GrammarFilepath != nil {
		cfg.GrammarFilepath = *fc.GrammarFilepath
	}
	if fc.ExecutionMode != nil {
		cfg.ExecutionMode = *fc.ExecutionMode
	}
	if fc.TraversalDirection != nil {
		cfg.TraversalDirection = *fc.TraversalDirection
	}
	if fc.ProcessingStrategy != nil {
		cfg.ProcessingStrategy = *fc.ProcessingStrategy
	}
	if fc.NumThreads != nil {
		cfg.NumThreads = *fc.NumThreads
	}

	applyFlagIfChanged(fs, "graph", &cfg.GraphFilepath)
	applyFlagIfChanged(fs, "grammar", &cfg.GrammarFilepath)
	applyFlagIfChanged(fs, "execution-mode", &cfg.ExecutionMode)
	applyFlagIfChanged(fs, "direction", &cfg.TraversalDirection)
	applyFlagIfChanged(fs, "strategy", &cfg.ProcessingStrategy)
	applyIntFlagIfChanged(fs, "threads", &cfg.NumThreads)

	if cfg.TraversalDirection == "" {
		if cfg.ExecutionMode == ExecutionParallel {
			cfg.TraversalDirection = DirectionForward
		} else {
			cfg.TraversalDirection = DirectionBoth
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFlagIfChanged(fs *pflag.FlagSet, name string, dst *string) {
	if fs.Changed(name) {
		v, err := fs.GetString(name)
		if err == nil {
			*dst = v
		}
	}
}

func applyIntFlagIfChanged(fs *pflag.FlagSet, name string, dst *int) {
	if fs.Changed(name) {
		v, err := fs.GetInt(name)
		if err == nil {
			*dst = v
		}
	}
}

func validate(cfg *Config) error {
	if cfg.GraphFilepath == "" {
		return ErrMissingGraphFilepath
	}
	if cfg.GrammarFilepath == "" {
		return ErrMissingGrammarFilepath
	}
	if cfg.ExecutionMode != ExecutionSerial && cfg.ExecutionMode != ExecutionParallel {
		return fmt.Errorf("%w: got %q", ErrInvalidExecutionMode, cfg.ExecutionMode)
	}
	switch cfg.TraversalDirection {
	case DirectionForward, DirectionBackward, DirectionBoth:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidTraversalDirection, cfg.TraversalDirection)
	}
	switch cfg.ProcessingStrategy {
	case StrategyGramDriven, StrategyTopoDriven:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidProcessingStrategy, cfg.ProcessingStrategy)
	}
	if cfg.NumThreads <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreadCount, cfg.NumThreads)
	}
	// spec.md §4.5, §9: the parallel × topo-driven × (bw, bi) corner is
	// left open by the spec; this driver commits to implementing it
	// uniformly (saturate.ParallelStrategy supports every direction ×
	// policy combination already), so no combination is rejected here.

	return nil
}
