// Package markov - removal effects and conversion attribution.
package markov

import "math"

// effectTol guards the renormalization against an effect sum that is zero
// within floating-point noise.
const effectTol = 1e-12

// RemovalEffects computes R(c) for every channel in the universe.
//
// R(c) = (P_baseline − P_without_c) / P_baseline, where both terms are true
// absorption probabilities from StateStart. A zero baseline (no journey
// converts, or no journeys at all) yields all-zero effects. Effects may be
// negative — a channel whose removal raises conversion probability — and
// are reported as computed.
//
// Complexity: one model build + absorption solve per channel.
func (m *Model) RemovalEffects() (Effects, error) {
	baseline, err := m.Transitions()
	if err != nil {
		return Effects{}, err
	}
	p0, err := baseline.ConversionProbability()
	if err != nil {
		return Effects{}, err
	}

	eff := Effects{Baseline: p0, PerChannel: make(map[string]float64, len(m.channels))}
	for _, ch := range m.channels {
		if p0 == 0 {
			eff.PerChannel[ch] = 0
			continue
		}
		without, werr := m.TransitionsWithout(ch)
		if werr != nil {
			return Effects{}, werr
		}
		pc, perr := without.ConversionProbability()
		if perr != nil {
			return Effects{}, perr
		}
		eff.PerChannel[ch] = (p0 - pc) / p0
	}

	return eff, nil
}

// Attribution converts removal effects into per-channel conversion credit:
// each channel's raw weight is R(c) × total conversions, then the vector is
// rescaled so the weights sum to the observed conversion count — readable
// as "conversions attributed to c". When the effect sum vanishes (every
// channel causally irrelevant, or an empty dataset) the vector is all
// zeros rather than an arbitrary split.
//
// Complexity: RemovalEffects + O(channels).
func (m *Model) Attribution() (map[string]float64, error) {
	eff, err := m.RemovalEffects()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(m.channels))
	var sum float64
	for _, r := range eff.PerChannel {
		sum += r
	}
	if math.Abs(sum) < effectTol {
		for _, ch := range m.channels {
			out[ch] = 0
		}

		return out, nil
	}

	conversions := float64(m.ds.Conversions())
	for ch, r := range eff.PerChannel {
		out[ch] = r / sum * conversions
	}

	return out, nil
}
