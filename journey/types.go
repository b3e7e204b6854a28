// Package journey - core observation types and sentinel errors.
//
// Design principles (shared across attribkit):
//   - Sentinel errors only; match with errors.Is. Context is added via
//     fmt.Errorf("ctx: %w", ErrX) at the detection site.
//   - No logging, no panics on user input.
//   - Constructors validate once; values are immutable afterwards.
package journey

import "errors"

// Sentinel errors returned by dataset and table constructors.
var (
	// ErrUnknownChannel indicates that a journey or table row references a
	// channel outside the declared channel universe.
	ErrUnknownChannel = errors.New("journey: unknown channel")

	// ErrDuplicateChannel indicates that a declared channel universe or a
	// table header lists the same channel twice.
	ErrDuplicateChannel = errors.New("journey: duplicate channel")

	// ErrEmptyChannel indicates an empty-string channel identifier, which is
	// reserved (it cannot be distinguished from "no channel" in reports).
	ErrEmptyChannel = errors.New("journey: empty channel identifier")

	// ErrTableShape indicates that an indicator table's row width or outcome
	// count does not match its channel header.
	ErrTableShape = errors.New("journey: table shape mismatch")
)

// Journey is one ordered observation: the channels touched, in order, and
// whether the sequence ended in a conversion. Journeys are value objects;
// the engine never mutates them.
type Journey struct {
	// Channels lists the touchpoints in causal order. May be empty: an
	// empty journey contributes only a Start→outcome transition to Markov
	// models and nothing to coalition value functions.
	Channels []string

	// Converted reports the terminal outcome of the sequence.
	Converted bool
}

// ValueFunc maps a coalition (an unordered subset of channels) to a scalar
// value, typically an estimated conversion probability. Implementations
// must be pure: same coalition ⇒ same value, no observable side effects.
//
// Contract:
//   - v(∅) must be 0 for Shapley efficiency to hold.
//   - Returned values must be finite; estimators reject NaN/±Inf.
//   - The coalition slice is read-only and not retained after the call.
type ValueFunc func(coalition []string) (float64, error)
