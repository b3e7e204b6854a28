// Package axioms - fairness-axiom verification.
package axioms

import (
	"math"
	"sort"
)

// DefaultTolerance is the absolute tolerance applied when none is supplied.
const DefaultTolerance = 1e-6

// Options configures the checks.
//
// Tolerance — absolute tolerance for equality comparisons. Estimated
// attributions satisfy the axioms only up to sampling error, so pick a
// tolerance matching the estimator's standard error.
type Options struct {
	Tolerance float64
}

// Option is a functional option for the checks.
type Option func(*Options)

// DefaultOptions returns the DefaultTolerance configuration.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithTolerance sets the absolute comparison tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// Report aggregates the per-axiom outcomes of Check.
type Report struct {
	// Efficiency holds whether Σ attributions matched the total outcome;
	// EfficiencyError is the absolute residual either way.
	Efficiency      bool
	EfficiencyError float64

	// Symmetry holds whether every group of equal-contribution players
	// received equal credit; SymmetryViolations lists offending groups
	// (sorted player names) otherwise.
	Symmetry           bool
	SymmetryViolations [][]string

	// NullPlayer holds whether every zero-contribution player received
	// zero credit; NullViolations lists offenders otherwise.
	NullPlayer     bool
	NullViolations []string
}

// Check verifies efficiency, symmetry and null-player for one attribution
// vector. contributions supplies each player's standalone contribution
// value — the proxy used to decide which players are interchangeable
// (equal contribution) and which are null (zero contribution).
//
// Complexity: O(n log n).
func Check(attributions, contributions map[string]float64, totalOutcome float64, opts ...Option) Report {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var rep Report
	rep.Efficiency, rep.EfficiencyError = Efficiency(attributions, totalOutcome, cfg.Tolerance)
	rep.Symmetry, rep.SymmetryViolations = Symmetry(attributions, contributions, cfg.Tolerance)
	rep.NullPlayer, rep.NullViolations = NullPlayer(attributions, contributions, cfg.Tolerance)

	return rep
}

// Efficiency verifies Σᵢ φᵢ = totalOutcome within tol and returns the
// absolute residual.
func Efficiency(attributions map[string]float64, totalOutcome, tol float64) (bool, float64) {
	var sum float64
	for _, v := range attributions {
		sum += v
	}
	err := math.Abs(sum - totalOutcome)

	return err <= tol, err
}

// Symmetry verifies that players with equal contribution values received
// equal attribution. Contribution values are bucketed within tol; each
// bucket's attributions must agree within tol. Violating groups come back
// sorted for stable reporting.
func Symmetry(attributions, contributions map[string]float64, tol float64) (bool, [][]string) {
	players := sortedKeys(contributions)

	// Greedy tolerance bucketing over sorted contribution values.
	sort.Slice(players, func(i, j int) bool {
		return contributions[players[i]] < contributions[players[j]]
	})

	var violations [][]string
	for i := 0; i < len(players); {
		j := i + 1
		for j < len(players) && contributions[players[j]]-contributions[players[i]] <= tol {
			j++
		}
		group := players[i:j]
		if !attributionsAgree(attributions, group, tol) {
			sorted := append([]string(nil), group...)
			sort.Strings(sorted)
			violations = append(violations, sorted)
		}
		i = j
	}

	return len(violations) == 0, violations
}

// NullPlayer verifies that players with zero contribution (within tol)
// received zero attribution (within tol).
func NullPlayer(attributions, contributions map[string]float64, tol float64) (bool, []string) {
	var violations []string
	for _, p := range sortedKeys(contributions) {
		if math.Abs(contributions[p]) <= tol && math.Abs(attributions[p]) > tol {
			violations = append(violations, p)
		}
	}

	return len(violations) == 0, violations
}

// Additivity verifies that the attribution of a sum game equals the sum of
// the component games' attributions: φ(v+w) = φ(v) + φ(w) per player.
// Players missing from a component count as 0 there.
func Additivity(sumGame, game1, game2 map[string]float64, tol float64) bool {
	keys := make(map[string]struct{}, len(sumGame))
	for p := range sumGame {
		keys[p] = struct{}{}
	}
	for p := range game1 {
		keys[p] = struct{}{}
	}
	for p := range game2 {
		keys[p] = struct{}{}
	}

	for p := range keys {
		if math.Abs(sumGame[p]-(game1[p]+game2[p])) > tol {
			return false
		}
	}

	return true
}

func attributionsAgree(attributions map[string]float64, group []string, tol float64) bool {
	for i := 1; i < len(group); i++ {
		if math.Abs(attributions[group[i]]-attributions[group[0]]) > tol {
			return false
		}
	}

	return true
}

func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
