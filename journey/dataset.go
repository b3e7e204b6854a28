package journey

import (
	"fmt"
	"sort"
)

// Dataset is an immutable snapshot of journeys plus the channel universe
// they are allowed to reference. Construction validates the vocabulary
// once; every estimator downstream can then trust it.
type Dataset struct {
	journeys []Journey
	universe []string            // sorted, unique
	index    map[string]struct{} // membership view of universe
}

// Option configures NewDataset.
type Option func(*datasetOptions)

type datasetOptions struct {
	universe []string // declared channel vocabulary; nil ⇒ derive from journeys
}

// WithUniverse declares the channel vocabulary explicitly. Journeys touching
// a channel outside this set are rejected with ErrUnknownChannel. Channels
// never observed in any journey are still legal players (they simply earn
// zero attribution everywhere).
func WithUniverse(channels []string) Option {
	return func(o *datasetOptions) {
		o.universe = channels
	}
}

// NewDataset copies journeys into an immutable snapshot and resolves the
// channel universe (declared via WithUniverse, or derived as the sorted set
// of observed channels).
//
// Contracts:
//   - Channel identifiers must be non-empty (ErrEmptyChannel).
//   - A declared universe must be duplicate-free (ErrDuplicateChannel).
//   - Every journey channel must belong to the universe (ErrUnknownChannel).
//
// Complexity: O(T log T) where T is the total touch count.
func NewDataset(journeys []Journey, opts ...Option) (*Dataset, error) {
	var cfg datasetOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	ds := &Dataset{
		journeys: make([]Journey, len(journeys)),
		index:    make(map[string]struct{}),
	}

	if cfg.universe != nil {
		for _, ch := range cfg.universe {
			if ch == "" {
				return nil, ErrEmptyChannel
			}
			if _, dup := ds.index[ch]; dup {
				return nil, fmt.Errorf("universe channel %q: %w", ch, ErrDuplicateChannel)
			}
			ds.index[ch] = struct{}{}
		}
	}

	for i, j := range journeys {
		touched := make([]string, len(j.Channels))
		copy(touched, j.Channels)
		ds.journeys[i] = Journey{Channels: touched, Converted: j.Converted}

		for _, ch := range touched {
			if ch == "" {
				return nil, fmt.Errorf("journey %d: %w", i, ErrEmptyChannel)
			}
			if _, ok := ds.index[ch]; !ok {
				if cfg.universe != nil {
					return nil, fmt.Errorf("journey %d: channel %q: %w", i, ch, ErrUnknownChannel)
				}
				ds.index[ch] = struct{}{}
			}
		}
	}

	ds.universe = make([]string, 0, len(ds.index))
	for ch := range ds.index {
		ds.universe = append(ds.universe, ch)
	}
	sort.Strings(ds.universe)

	return ds, nil
}

// Channels returns the sorted channel universe as a fresh slice.
func (ds *Dataset) Channels() []string {
	out := make([]string, len(ds.universe))
	copy(out, ds.universe)

	return out
}

// Contains reports whether ch belongs to the channel universe.
func (ds *Dataset) Contains(ch string) bool {
	_, ok := ds.index[ch]

	return ok
}

// Len returns the number of journeys in the snapshot.
func (ds *Dataset) Len() int { return len(ds.journeys) }

// Journeys returns a shallow iteration copy of the journey slice. The inner
// channel slices belong to the dataset; callers must treat them read-only.
func (ds *Dataset) Journeys() []Journey {
	out := make([]Journey, len(ds.journeys))
	copy(out, ds.journeys)

	return out
}

// Conversions returns the number of converted journeys.
func (ds *Dataset) Conversions() int {
	var n int
	for _, j := range ds.journeys {
		if j.Converted {
			n++
		}
	}

	return n
}

// ConversionRate returns Conversions()/Len(), or 0 for an empty dataset.
func (ds *Dataset) ConversionRate() float64 {
	if len(ds.journeys) == 0 {
		return 0
	}

	return float64(ds.Conversions()) / float64(len(ds.journeys))
}

// ConversionRateValue derives a coalition value function from ds: the value
// of a coalition S is the conversion rate among journeys whose every touch
// lies inside S. Journeys touching channels outside S are excluded, so
// v(∅)=0 (an empty journey set has rate 0) and v(universe) is the overall
// conversion rate — the grand-coalition value the Shapley efficiency axiom
// distributes.
//
// Complexity: O(T) per call, T = total touches. Pair with the estimator's
// coalition cache; coalitions recur heavily across permutations.
func ConversionRateValue(ds *Dataset) ValueFunc {
	return func(coalition []string) (float64, error) {
		if len(coalition) == 0 {
			return 0, nil
		}
		member := make(map[string]struct{}, len(coalition))
		for _, ch := range coalition {
			member[ch] = struct{}{}
		}

		var matched, converted int
		for _, j := range ds.journeys {
			inside := true
			for _, ch := range j.Channels {
				if _, ok := member[ch]; !ok {
					inside = false
					break
				}
			}
			// Empty journeys carry no touches; they match every coalition
			// vacuously but say nothing about channel value, so skip them.
			if !inside || len(j.Channels) == 0 {
				continue
			}
			matched++
			if j.Converted {
				converted++
			}
		}

		if matched == 0 {
			return 0, nil
		}

		return float64(converted) / float64(matched), nil
	}
}
