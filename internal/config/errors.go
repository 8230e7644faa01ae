// Package config resolves the driver's layered configuration (spec.md §6):
// a TOML file (github.com/BurntSushi/toml, matching the pattern named in
// manifests/dekarrin-tunaq/go.mod) supplies defaults, and pflag-bound CLI
// flags always win over file values, following builder/errors.go's sentinel
// error policy.
package config

import "errors"

var (
	// ErrMissingGraphFilepath indicates graphFilepath was not supplied by
	// either the config file or a flag.
	ErrMissingGraphFilepath = errors.New("config: graphFilepath is required")

	// ErrMissingGrammarFilepath indicates grammarFilepath was not supplied.
	ErrMissingGrammarFilepath = errors.New("config: grammarFilepath is required")

	// ErrInvalidExecutionMode indicates executionMode is neither "serial"
	// nor "parallel".
	ErrInvalidExecutionMode = errors.New("config: executionMode must be serial or parallel")

	// ErrInvalidTraversalDirection indicates traversalDirection is not one
	// of fw, bw, bi.
	ErrInvalidTraversalDirection = errors.New("config: traversalDirection must be fw, bw, or bi")

	// ErrInvalidProcessingStrategy indicates processingStrategy is not one
	// of gram-driven, topo-driven.
	ErrInvalidProcessingStrategy = errors.New("config: processingStrategy must be gram-driven or topo-driven")

	// ErrInvalidThreadCount indicates numThreads is not a positive integer.
	ErrInvalidThreadCount = errors.New("config: numThreads must be positive")

	// ErrUnsupportedVariant indicates a (executionMode, traversalDirection,
	// processingStrategy) combination the driver does not implement
	// (spec.md §4.5, §7 "invalid variant selection").
	ErrUnsupportedVariant = errors.New("config: unsupported parallel/topo-driven/direction combination")
)
