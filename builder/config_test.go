// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// assertPanics runs f and asserts that it panics with a message containing wantSubstr.
func assertPanics(t *testing.T, f func(), wantSubstr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", wantSubstr)
			return
		}
		got := fmt.Sprint(r)
		if wantSubstr != "" && !strings.Contains(got, wantSubstr) {
			t.Fatalf("panic mismatch: want substring %q, got %q", wantSubstr, got)
		}
	}()
	f()
}

// TestIDSchemeOptions verifies that ID scheme options are applied in order
// and that a nil scheme panics (fail-fast).
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	// 1. Default configuration: IDFn should be DefaultIDFn
	cfgDefault := newBuilderConfig()
	// call idFn on a sample index
	if got := cfgDefault.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}

	// 2. WithSymbolIDs should override to SymbolIDFn
	cfgSymbol := newBuilderConfig(WithSymbolIDs())
	if got := cfgSymbol.idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	// 3. WithExcelColumnIDs should override to ExcelColumnIDFn
	cfgExcel := newBuilderConfig(WithExcelColumnIDs())
	if got := cfgExcel.idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}

	// 4. WithAlphanumericIDs should override to AlphanumericIDFn
	cfgAlpha := newBuilderConfig(WithAlphanumericIDs())
	if got := cfgAlpha.idFn(35); got != "z" {
		t.Errorf("WithAlphanumericIDs: expected \"z\", got %q", got)
	}

	// 5. WithDefaultIDs after another option should reset to DefaultIDFn
	cfgReset := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	if got := cfgReset.idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}

	// 6. WithIDScheme(nil) MUST panic (fail-fast), not no-op
	assertPanics(t, func() { _ = newBuilderConfig(WithIDScheme(nil)) }, "WithIDScheme(nil)")
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and rejecting nil in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) MUST panic (fail-fast), not no-op
	assertPanics(t, func() { _ = newBuilderConfig(WithRand(nil)) }, "WithRand(nil)")

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestLabelFnOptions verifies that label function options apply correctly,
// override in order, and reject nil inputs.
func TestLabelFnOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	const constLabel = "Z"
	alphabet := []string{"a", "b", "c"}
	rng := rand.New(rand.NewSource(1))

	// 1. Default configuration: labelFn should be DefaultLabelFn
	cfgDefault := newBuilderConfig()
	if l := cfgDefault.labelFn(nil); l != DefaultEdgeLabel {
		t.Errorf("default labelFn(nil): expected %q, got %q", DefaultEdgeLabel, l)
	}

	// 2. WithConstantLabel should override to a constant value
	cfgConst := newBuilderConfig(WithConstantLabel(constLabel))
	if l := cfgConst.labelFn(nil); l != constLabel {
		t.Errorf("WithConstantLabel(nil): expected %q, got %q", constLabel, l)
	}
	if l := cfgConst.labelFn(rng); l != constLabel {
		t.Errorf("WithConstantLabel(rng): expected %q, got %q", constLabel, l)
	}

	// 3. WithAlphabetLabel should override to a uniform sampler over the alphabet
	cfgAlpha := newBuilderConfig(WithAlphabetLabel(alphabet))
	// nil rng yields alphabet[0]
	if l := cfgAlpha.labelFn(nil); l != alphabet[0] {
		t.Errorf("WithAlphabetLabel(nil rng): expected %q, got %q", alphabet[0], l)
	}
	// seeded rng yields a value from the alphabet
	val := cfgAlpha.labelFn(rng)
	found := false
	for _, a := range alphabet {
		if val == a {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("WithAlphabetLabel(rng): got %q, not in alphabet %v", val, alphabet)
	}

	// 4. Override order: last option wins
	cfgOverride := newBuilderConfig(WithConstantLabel("X"), WithAlphabetLabel(alphabet))
	val2 := cfgOverride.labelFn(rng)
	found = false
	for _, a := range alphabet {
		if val2 == a {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("override order: expected value in alphabet %v, got %q", alphabet, val2)
	}

	// 5. WithCycleLabel walks round-robin, ignoring rng.
	cfgCycle := newBuilderConfig(WithCycleLabel(alphabet))
	for i, want := range alphabet {
		if got := cfgCycle.labelFn(nil); got != want {
			t.Errorf("WithCycleLabel: call %d: expected %q, got %q", i, want, got)
		}
	}
	if got := cfgCycle.labelFn(nil); got != alphabet[0] {
		t.Errorf("WithCycleLabel: wraparound call: expected %q, got %q", alphabet[0], got)
	}

	// 6. WithLabelFn(nil) MUST panic (fail-fast)
	assertPanics(t, func() { _ = newBuilderConfig(WithLabelFn(nil)) }, "WithLabelFn(nil)")
}
