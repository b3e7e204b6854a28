// Package privacy - cumulative budget ledger.
package privacy

import (
	"math"
	"sync"
)

// Budget tracks cumulative ε spent across releases within one session.
// Spend is monotone; the only way back to zero is a new ledger. Updates
// are serialized under a mutex so concurrent computations within a session
// account correctly.
type Budget struct {
	mu      sync.Mutex
	spent   float64
	ceiling float64 // 0 ⇒ unenforced
}

// NewBudget builds a standalone ledger (NewMechanism embeds one already).
//
// Contracts: a ceiling, when supplied, must be positive (ErrInvalidCeiling).
func NewBudget(opts ...Option) (*Budget, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ceiling < 0 || math.IsNaN(cfg.Ceiling) || math.IsInf(cfg.Ceiling, 0) {
		return nil, ErrInvalidCeiling
	}

	return newBudget(cfg.Ceiling), nil
}

func newBudget(ceiling float64) *Budget {
	return &Budget{ceiling: ceiling}
}

// Spend charges ε to the ledger and reports whether the cumulative spend
// now exceeds the ceiling. Exceeding warns, it does not block: the ledger
// cannot know which composition rule governs the deployment.
//
// Contracts: ε > 0 (ErrInvalidEpsilon).
func (b *Budget) Spend(epsilon float64) (bool, error) {
	if err := validEpsilon(epsilon); err != nil {
		return false, err
	}

	return b.spend(epsilon), nil
}

// spend is the validated core shared with Mechanism.Privatize.
func (b *Budget) spend(epsilon float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.spent += epsilon

	return b.ceiling > 0 && b.spent > b.ceiling
}

// Spent returns the cumulative ε charged so far.
func (b *Budget) Spent() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.spent
}

// Remaining returns ceiling − spent (never below 0), or +Inf when no
// ceiling is enforced.
func (b *Budget) Remaining() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ceiling == 0 {
		return math.Inf(1)
	}

	return math.Max(0, b.ceiling-b.spent)
}
