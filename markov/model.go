// Package markov - transition model construction.
package markov

import (
	"fmt"

	"github.com/katalvlaran/attribkit/matrix"
)

// Transitions builds the baseline transition model: every journey starts at
// StateStart, walks its channels in order, and absorbs in StateConversion
// or StateNull according to its outcome.
//
// Rows with zero outgoing observations are absorbing self-loops, keeping
// every row stochastic.
//
// Complexity: O(total touches + s²) for s states.
func (m *Model) Transitions() (*TransitionModel, error) {
	return m.build("")
}

// TransitionsWithout builds the counterfactual model with channel removed:
// any transition that would enter the channel is redirected to StateNull
// and the journey's remaining path is dropped, i.e. the channel becomes an
// immediate null absorber. The removed channel keeps its (now unreachable,
// self-absorbing) row so baseline and counterfactual models share one state
// space.
//
// Contracts: removed must belong to the channel universe (ErrUnknownState).
func (m *Model) TransitionsWithout(removed string) (*TransitionModel, error) {
	if !m.ds.Contains(removed) {
		return nil, fmt.Errorf("channel %q: %w", removed, ErrUnknownState)
	}

	return m.build(removed)
}

// build assembles transition counts and row-normalizes them. removed==""
// means baseline.
func (m *Model) build(removed string) (*TransitionModel, error) {
	states := make([]string, 0, len(m.channels)+3)
	states = append(states, StateStart)
	states = append(states, m.channels...)
	states = append(states, StateConversion, StateNull)

	index := make(map[string]int, len(states))
	for i, s := range states {
		index[s] = i
	}

	counts := make([][]float64, len(states))
	for i := range counts {
		counts[i] = make([]float64, len(states))
	}

	conv := index[StateConversion]
	null := index[StateNull]

	for _, j := range m.ds.Journeys() {
		prev := index[StateStart]
		redirected := false
		for _, ch := range j.Channels {
			if ch == removed {
				// Path runs through the removed channel: redirect to null
				// and drop the remainder of the journey.
				counts[prev][null]++
				redirected = true
				break
			}
			next := index[ch]
			counts[prev][next]++
			prev = next
		}
		if redirected {
			continue
		}
		if j.Converted {
			counts[prev][conv]++
		} else {
			counts[prev][null]++
		}
	}

	probs, err := matrix.NewDense(len(states), len(states))
	if err != nil {
		return nil, err
	}
	for i := range counts {
		var total float64
		for _, c := range counts[i] {
			total += c
		}
		if total == 0 {
			// No outgoing observations (terminal states, the removed
			// channel, never-visited channels): absorbing self-loop.
			if err = probs.Set(i, i, 1); err != nil {
				return nil, err
			}
			continue
		}
		for j, c := range counts[i] {
			if c == 0 {
				continue
			}
			if err = probs.Set(i, j, c/total); err != nil {
				return nil, err
			}
		}
	}

	return &TransitionModel{states: states, index: index, probs: probs}, nil
}

// isAbsorbing reports whether state i is a self-loop-only row.
func (tm *TransitionModel) isAbsorbing(i int) bool {
	for j := 0; j < len(tm.states); j++ {
		p, _ := tm.probs.At(i, j)
		if i == j {
			if p != 1 {
				return false
			}
			continue
		}
		if p != 0 {
			return false
		}
	}

	return true
}
