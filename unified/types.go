// Package unified - session, options and result types.
package unified

import (
	"errors"
	"time"

	"github.com/katalvlaran/attribkit/hybrid"
	"github.com/katalvlaran/attribkit/journey"
	"github.com/katalvlaran/attribkit/markov"
	"github.com/katalvlaran/attribkit/privacy"
	"github.com/katalvlaran/attribkit/shapley"
)

// Method names keying Result.Methods.
const (
	MethodShapley = "shapley"
	MethodMarkov  = "markov"
	MethodHybrid  = "hybrid"
	MethodPrivate = "private"
)

// ErrNilDataset indicates a nil *journey.Dataset.
var ErrNilDataset = errors.New("unified: dataset is nil")

// Session owns the only cross-call state in the engine: the privacy
// mechanism and its budget ledger. Estimation itself is stateless; run as
// many computations per session as needed, concurrently if desired — the
// ledger serializes its own updates.
type Session struct {
	mech *privacy.Mechanism
}

// NewSession creates a session; privacy options (noise seed, budget
// ceiling) configure its mechanism. A malformed ceiling fails here
// (privacy.ErrInvalidCeiling) rather than silently disabling enforcement.
func NewSession(opts ...privacy.Option) (*Session, error) {
	mech, err := privacy.NewMechanism(opts...)
	if err != nil {
		return nil, err
	}

	return &Session{mech: mech}, nil
}

// Budget exposes the session's ledger for inspection.
func (s *Session) Budget() *privacy.Budget { return s.mech.Budget() }

// Options configures one ComputeCompleteAttribution call. Fields are
// unexported; use the functional options.
type Options struct {
	sampleCount int
	workers     int
	seed        int64
	alpha       float64
	value       journey.ValueFunc
	table       *journey.Table
	epsilon     float64
	withPrivacy bool
	sensitivity float64 // 0 ⇒ derive 1/n from the dataset
}

// Option is a functional option for ComputeCompleteAttribution.
type Option func(*Options)

// DefaultOptions returns the baseline call configuration: default Shapley
// sampling, even hybrid blend, no privacy.
func DefaultOptions() Options {
	return Options{
		sampleCount: shapley.DefaultSampleCount,
		alpha:       hybrid.DefaultAlpha,
		workers:     1,
	}
}

// WithSampleCount sets the Shapley permutation sample count.
func WithSampleCount(m int) Option {
	return func(o *Options) { o.sampleCount = m }
}

// WithWorkers sets the Shapley sampling worker count (0 ⇒ GOMAXPROCS).
func WithWorkers(w int) Option {
	return func(o *Options) { o.workers = w }
}

// WithSeed fixes the estimation seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithAlpha sets the hybrid blend weight (Shapley side).
func WithAlpha(a float64) Option {
	return func(o *Options) { o.alpha = a }
}

// WithValueFunction overrides the coalition value function (default: the
// dataset's journey-restricted conversion rate).
func WithValueFunction(fn journey.ValueFunc) Option {
	return func(o *Options) { o.value = fn }
}

// WithTable derives the value function from a binary-indicator table
// instead of the journeys (ignored when WithValueFunction is also given).
func WithTable(t *journey.Table) Option {
	return func(o *Options) { o.table = t }
}

// WithPrivacy requests an additional differentially-private release of the
// hybrid vector at budget ε. Not calling WithPrivacy means no noise and no
// budget spend; calling it with ε ≤ 0 fails the computation.
func WithPrivacy(epsilon float64) Option {
	return func(o *Options) {
		o.epsilon = epsilon
		o.withPrivacy = true
	}
}

// WithSensitivity overrides the per-record sensitivity Δf used by the
// private release (default 1/n for n journeys — a documented assumption
// for the hybrid path, see package privacy).
func WithSensitivity(df float64) Option {
	return func(o *Options) { o.sensitivity = df }
}

// Result is the outcome of one complete attribution computation.
type Result struct {
	// Methods maps each method name to its channel → weight vector.
	Methods map[string]map[string]float64

	// Shapley carries the estimator's full diagnostics (marginals,
	// variance, convergence traces).
	Shapley shapley.Result

	// Effects carries the Markov removal-effect diagnostics.
	Effects markov.Effects

	// Elapsed is the wall-clock duration of the computation.
	Elapsed time.Duration

	// EpsilonSpent is the session's cumulative ε after this call; 0 until
	// a call in the session requests privacy.
	EpsilonSpent float64

	// BudgetExceeded warns that the cumulative spend passed the session's
	// configured ceiling (always false without a ceiling).
	BudgetExceeded bool
}
