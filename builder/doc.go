// Package builder provides reusable "functional-options"-style building
// blocks for assembling deterministic core.Graph fixtures. It centralizes
// common configuration, ID schemes, edge-label distributions, and validation
// logic, keeping topology constructors DRY, testable, and consistent —
// useful both in tests and as seed data for saturate benchmarks.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, ID-scheme, label function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge-label distributions (LabelFn implementations):
//     – DefaultLabelFn: constant label DefaultEdgeLabel.
//     – ConstantLabelFn: fixed user-provided label.
//     – AlphabetLabelFn: uniform sample from a label alphabet.
//     – CycleLabelFn:    round-robin walk over a label alphabet.
//   - Validation helpers:
//     – validateMin:         ensure integer ≥ minimum.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinCompleteNodes.
//     – DefaultEdgeLabel, MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, MethodComplete, MethodRandomSparse.
//
// Guarantees:
//
//   - Deterministic output: the same builder and options on a fresh graph yield
//     the same vertices and edges. Re-running a builder on the same g reuses
//     existing vertices but adds its edges again (parallel edges on a
//     multigraph, ErrMultiEdgeNotAllowed otherwise).
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors wrapping sentinel values via %w for easy
//     errors.Is filtering.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Fully testable: all IDFn, LabelFn, BuilderOption, and validation branches
//     are covered by unit tests.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
