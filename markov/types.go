// Package markov - sentinel errors, state naming and model types.
//
// Design principles:
//   - Strict sentinels only; match with errors.Is.
//   - Deterministic: channel order is canonical (sorted), state indices are
//     stable, no map-iteration order leaks into results.
//   - No logging, no panics on user input.
package markov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/attribkit/journey"
	"github.com/katalvlaran/attribkit/matrix"
)

// Reserved state names. Channels may not collide with these: the states
// share one namespace inside the transition model.
const (
	// StateStart is the synthetic state every journey departs from.
	StateStart = "(start)"

	// StateConversion is the absorbing state of converted journeys.
	StateConversion = "(conversion)"

	// StateNull is the absorbing state of non-converted journeys, and the
	// redirect target when a channel is removed.
	StateNull = "(null)"
)

// Sentinel errors returned by the Markov attribution model.
var (
	// ErrNilDataset indicates a nil *journey.Dataset.
	ErrNilDataset = errors.New("markov: dataset is nil")

	// ErrReservedChannel indicates a channel whose identifier collides with
	// one of the reserved state names.
	ErrReservedChannel = errors.New("markov: channel name is a reserved state")

	// ErrUnknownState indicates a Prob/TransitionsWithout query for a state
	// outside the model's vocabulary. Journeys themselves are validated at
	// dataset construction (journey.ErrUnknownChannel).
	ErrUnknownState = errors.New("markov: unknown state")
)

// Model is an immutable view over a journey dataset, ready to build
// baseline and counterfactual (channel-removed) transition models.
type Model struct {
	ds       *journey.Dataset
	channels []string // sorted universe, validated against reserved names
}

// New validates the dataset's vocabulary against the reserved state names
// and returns a Model. An empty dataset is legal: it yields a zero model
// whose removal effects are all zero.
func New(ds *journey.Dataset) (*Model, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	channels := ds.Channels()
	for _, ch := range channels {
		if ch == StateStart || ch == StateConversion || ch == StateNull {
			return nil, fmt.Errorf("channel %q: %w", ch, ErrReservedChannel)
		}
	}

	return &Model{ds: ds, channels: channels}, nil
}

// Channels returns the model's sorted channel universe.
func (m *Model) Channels() []string {
	out := make([]string, len(m.channels))
	copy(out, m.channels)

	return out
}

// TransitionModel is a row-stochastic first-order chain over
// start + channels + conversion + null. Immutable after construction;
// counterfactual variants are built fresh via TransitionsWithout.
type TransitionModel struct {
	states []string       // canonical order: start, channels..., conversion, null
	index  map[string]int // state → row/col
	probs  *matrix.Dense  // row-stochastic transition probabilities
}

// States returns the state vocabulary in canonical order.
func (tm *TransitionModel) States() []string {
	out := make([]string, len(tm.states))
	copy(out, tm.states)

	return out
}

// Prob returns P(from→to), or ErrUnknownState for out-of-vocabulary states.
func (tm *TransitionModel) Prob(from, to string) (float64, error) {
	i, ok := tm.index[from]
	if !ok {
		return 0, fmt.Errorf("state %q: %w", from, ErrUnknownState)
	}
	j, ok := tm.index[to]
	if !ok {
		return 0, fmt.Errorf("state %q: %w", to, ErrUnknownState)
	}

	return tm.probs.At(i, j)
}

// Effects bundles removal-effect diagnostics for every channel.
type Effects struct {
	// Baseline is the absorption probability of conversion from start under
	// the unmodified chain.
	Baseline float64

	// PerChannel maps each channel to R(c) = (Baseline − P_without_c)/Baseline.
	// Values may be negative or zero; they are reported as computed.
	PerChannel map[string]float64
}
