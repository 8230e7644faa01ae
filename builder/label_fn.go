// Package builder provides internal helper functions and types
// for configuring edge-label distributions in graph constructors.
package builder

import (
	"math/rand"
)

// DefaultEdgeLabel is the label assigned to each edge when no custom LabelFn
// is provided. It is a syntactically valid terminal-like token but carries no
// grammar meaning of its own — callers pairing builder output with a real
// grammar should supply WithConstantLabel or WithAlphabetLabel instead.
const DefaultEdgeLabel = "e"

// LabelFn produces an edge label given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type LabelFn func(rng *rand.Rand) string

// DefaultLabelFn always returns DefaultEdgeLabel.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultLabelFn(_ *rand.Rand) string {
	return DefaultEdgeLabel
}

// ConstantLabelFn returns a LabelFn that always yields the provided label.
// Panics if label is empty.
// Complexity: O(1) time, O(1) space.
func ConstantLabelFn(label string) LabelFn {
	if label == "" {
		panic("ConstantLabelFn: label must be non-empty")
	}

	return func(_ *rand.Rand) string {
		return label
	}
}

// AlphabetLabelFn returns a LabelFn sampling uniformly from alphabet.
// Panics if alphabet is empty or contains an empty entry.
// If rng is nil, yields alphabet[0] to maintain a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func AlphabetLabelFn(alphabet []string) LabelFn {
	if len(alphabet) == 0 {
		panic("AlphabetLabelFn: alphabet must be non-empty")
	}
	for _, l := range alphabet {
		if l == "" {
			panic("AlphabetLabelFn: alphabet must not contain an empty label")
		}
	}

	return func(rng *rand.Rand) string {
		if rng == nil {
			return alphabet[0]
		}

		return alphabet[rng.Intn(len(alphabet))]
	}
}

// CycleLabelFn returns a LabelFn that walks alphabet round-robin by call
// count, ignoring rng entirely. Useful for fixtures that want every label in
// a small alphabet exercised at least once without biasing toward repeats.
// Panics if alphabet is empty.
// Complexity: O(1) time, O(1) space per call.
func CycleLabelFn(alphabet []string) LabelFn {
	if len(alphabet) == 0 {
		panic("CycleLabelFn: alphabet must be non-empty")
	}

	var i int
	return func(_ *rand.Rand) string {
		l := alphabet[i%len(alphabet)]
		i++

		return l
	}
}

// resolveLabelFn returns the first non-nil LabelFn in lfn, or DefaultLabelFn
// if none provided.
// Complexity: O(1) time, O(1) space.
func resolveLabelFn(lfn ...LabelFn) LabelFn {
	if len(lfn) > 0 && lfn[0] != nil {
		return lfn[0]
	}

	return DefaultLabelFn
}

// WithConstantLabel sets a fixed edge label via ConstantLabelFn.
// Complexity: O(1).
func WithConstantLabel(label string) BuilderOption {
	return WithLabelFn(ConstantLabelFn(label))
}

// WithAlphabetLabel sets labels sampled uniformly from alphabet via AlphabetLabelFn.
// Complexity: O(1).
func WithAlphabetLabel(alphabet []string) BuilderOption {
	return WithLabelFn(AlphabetLabelFn(alphabet))
}

// WithCycleLabel sets labels walking alphabet round-robin via CycleLabelFn.
// Complexity: O(1).
func WithCycleLabel(alphabet []string) BuilderOption {
	return WithLabelFn(CycleLabelFn(alphabet))
}
