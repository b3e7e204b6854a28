// Package markov attributes conversions to channels through first-order
// Markov chain removal effects over observed journeys.
//
// 🚀 How does it work?
//
//	Every journey walks a chain over states {channels} ∪ {start, conversion,
//	null}: a synthetic start state, one state per channel, and two absorbing
//	outcome states. Each consecutive pair of visited states contributes one
//	transition count; probabilities are row-normalized empirical frequencies.
//
//	A channel's causal weight is its removal effect: rebuild the chain with
//	every path through the channel redirected to null, recompute the
//	probability of absorbing in conversion starting from start, and take
//	the relative drop
//	  R(c) = (P_baseline − P_without_c) / P_baseline.
//
// ✨ Key features:
//   - absorption probabilities computed exactly via the (I−Q)·x = r linear
//     system — no truncated matrix powers, no mean-of-rows shortcuts
//   - rows without outgoing observations become absorbing self-loops, so
//     the model is always well-defined and row-stochastic
//   - negative and zero removal effects are reported as computed; nothing
//     is clamped (a channel that does not causally matter should say so)
//   - attribution is scaled so weights sum to the observed conversion
//     count, keeping the "conversions attributed" reading
//
// ⚙️ Usage:
//
//	m, err := markov.New(ds)          // ds is a validated journey.Dataset
//	eff, err := m.RemovalEffects()    // per-channel R(c) + baseline P
//	attr, err := m.Attribution()      // channel → attributed conversions
//
// Complexity: model build O(total touches); absorption solve O(s³) for
// s = channels + 1 transient states; removal effects run one rebuild+solve
// per channel.
package markov
