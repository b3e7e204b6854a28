// Package axioms verifies that an attribution vector respects the four
// fairness axioms that characterize Shapley allocations:
//
//   - Efficiency: Σᵢ φᵢ = total outcome (credit is conserved)
//   - Symmetry: interchangeable contributors receive equal credit
//   - Null player: a contributor that never changes any outcome gets 0
//   - Additivity: credits of two games combine linearly
//
// These checks are diagnostics for audits and tests, not gates: estimators
// satisfy the axioms only up to sampling error, so every check takes an
// explicit tolerance.
//
// ⚙️ Usage:
//
//	rep := axioms.Check(attr, contributions, totalOutcome)
//	if !rep.Efficiency {
//	  // Σ attr drifted by rep.EfficiencyError from the total outcome
//	}
package axioms
