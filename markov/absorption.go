// Package markov - absorption probability of the conversion state.
package markov

import "github.com/katalvlaran/attribkit/matrix"

// ConversionProbability returns the probability that a walk starting at
// StateStart is absorbed in StateConversion.
//
// Standard absorbing-chain computation: partition states into transient T
// and absorbing A, let Q be the T×T transient block and r the per-transient
// probability of stepping directly into StateConversion; the absorption
// vector x solves (I−Q)·x = r. Self-loop-only rows (including the removed
// channel and never-visited channels) count as absorbing with conversion
// probability 0 — except StateConversion itself, which absorbs with 1.
//
// Contracts: a singular (I−Q) propagates matrix.ErrSingular; with every
// journey terminating this indicates corrupted transition data, not a
// caller error.
//
// Complexity: O(|T|³) for the solve.
func (tm *TransitionModel) ConversionProbability() (float64, error) {
	n := len(tm.states)
	conv := tm.index[StateConversion]
	start := tm.index[StateStart]

	// Identify transient states in canonical order.
	transient := make([]int, 0, n)
	pos := make([]int, n) // state index → position in transient block, -1 if absorbing
	for i := 0; i < n; i++ {
		pos[i] = -1
	}
	for i := 0; i < n; i++ {
		if i != conv && !tm.isAbsorbing(i) {
			pos[i] = len(transient)
			transient = append(transient, i)
		}
	}

	// Start itself absorbing ⇒ it can never reach conversion.
	if pos[start] == -1 {
		return 0, nil
	}

	t := len(transient)
	ia, err := matrix.Identity(t) // becomes I−Q in place
	if err != nil {
		return 0, err
	}
	rhs := make([]float64, t)

	for ti, i := range transient {
		for j := 0; j < n; j++ {
			p, aerr := tm.probs.At(i, j)
			if aerr != nil {
				return 0, aerr
			}
			if p == 0 {
				continue
			}
			switch {
			case j == conv:
				rhs[ti] += p
			case pos[j] >= 0:
				cur, gerr := ia.At(ti, pos[j])
				if gerr != nil {
					return 0, gerr
				}
				if serr := ia.Set(ti, pos[j], cur-p); serr != nil {
					return 0, serr
				}
			default:
				// Step into a non-converting absorber: contributes 0.
			}
		}
	}

	x, err := ia.Solve(rhs)
	if err != nil {
		return 0, err
	}

	return x[pos[start]], nil
}
