package unified_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attribkit/journey"
	"github.com/katalvlaran/attribkit/privacy"
	"github.com/katalvlaran/attribkit/unified"
)

// scenarioDataset is the canonical two-channel journey set used across the
// engine's tests:
//
//	[A, B] → conversion
//	[B]    → conversion
//	[A]    → null
func scenarioDataset(t *testing.T) *journey.Dataset {
	t.Helper()
	ds, err := journey.NewDataset([]journey.Journey{
		{Channels: []string{"A", "B"}, Converted: true},
		{Channels: []string{"B"}, Converted: true},
		{Channels: []string{"A"}, Converted: false},
	})
	require.NoError(t, err)

	return ds
}

// newSession builds a session whose privacy options are known-valid.
func newSession(t *testing.T, opts ...privacy.Option) *unified.Session {
	t.Helper()
	s, err := unified.NewSession(opts...)
	require.NoError(t, err)

	return s
}

// TestCompute_Scenario runs the full pipeline on the scenario dataset and
// checks the cross-method agreement: B drives both converting paths, so
// every method must credit B at least as much as A.
func TestCompute_Scenario(t *testing.T) {
	res, err := newSession(t).ComputeCompleteAttribution(
		context.Background(), scenarioDataset(t),
		unified.WithSeed(42), unified.WithSampleCount(4000),
	)
	require.NoError(t, err)

	require.Contains(t, res.Methods, unified.MethodShapley)
	require.Contains(t, res.Methods, unified.MethodMarkov)
	require.Contains(t, res.Methods, unified.MethodHybrid)
	assert.NotContains(t, res.Methods, unified.MethodPrivate,
		"no private release without WithPrivacy")

	for name, vec := range res.Methods {
		assert.GreaterOrEqual(t, vec["B"], vec["A"], "method %s", name)
	}

	// Markov is exact on this dataset: R(A)=1/2, R(B)=1 over 2 conversions.
	assert.InDelta(t, 2.0/3.0, res.Methods[unified.MethodMarkov]["A"], 1e-12)
	assert.InDelta(t, 4.0/3.0, res.Methods[unified.MethodMarkov]["B"], 1e-12)
	assert.InDelta(t, 2.0/3.0, res.Effects.Baseline, 1e-12)

	// The hybrid is a proportion vector: it sums to 1 whenever both inputs
	// carry nonzero mass.
	var sum float64
	for _, w := range res.Methods[unified.MethodHybrid] {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	assert.Greater(t, res.Elapsed.Nanoseconds(), int64(0))
	assert.Zero(t, res.EpsilonSpent)
	assert.Equal(t, 4000, res.Shapley.Samples)
}

// TestCompute_Deterministic verifies that a fixed seed reproduces the whole
// result vector-for-vector, workers notwithstanding.
func TestCompute_Deterministic(t *testing.T) {
	ds := scenarioDataset(t)

	one, err := newSession(t).ComputeCompleteAttribution(
		context.Background(), ds,
		unified.WithSeed(7), unified.WithWorkers(1))
	require.NoError(t, err)

	two, err := newSession(t).ComputeCompleteAttribution(
		context.Background(), ds,
		unified.WithSeed(7), unified.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, one.Methods[unified.MethodShapley], two.Methods[unified.MethodShapley])
	assert.Equal(t, one.Methods[unified.MethodHybrid], two.Methods[unified.MethodHybrid])
}

// TestCompute_NilAndEmptyDataset covers the degenerate inputs: nil is an
// error, empty is a legal zero result.
func TestCompute_NilAndEmptyDataset(t *testing.T) {
	s := newSession(t)

	_, err := s.ComputeCompleteAttribution(context.Background(), nil)
	assert.ErrorIs(t, err, unified.ErrNilDataset)

	empty, err := journey.NewDataset(nil)
	require.NoError(t, err)
	res, err := s.ComputeCompleteAttribution(context.Background(), empty)
	require.NoError(t, err)
	assert.Empty(t, res.Methods[unified.MethodShapley])
	assert.Empty(t, res.Methods[unified.MethodMarkov])
	assert.Empty(t, res.Methods[unified.MethodHybrid])
}

// TestCompute_PrivateRelease verifies the privacy path: the "private" entry
// appears, differs from the hybrid, and the session ledger advances across
// calls.
func TestCompute_PrivateRelease(t *testing.T) {
	s := newSession(t, privacy.WithSeed(5))
	ds := scenarioDataset(t)

	res, err := s.ComputeCompleteAttribution(context.Background(), ds,
		unified.WithSeed(1), unified.WithPrivacy(1.0))
	require.NoError(t, err)

	require.Contains(t, res.Methods, unified.MethodPrivate)
	assert.NotEqual(t, res.Methods[unified.MethodHybrid], res.Methods[unified.MethodPrivate],
		"noise must perturb the release")
	assert.InDelta(t, 1.0, res.EpsilonSpent, 1e-12)
	assert.False(t, res.BudgetExceeded)

	res, err = s.ComputeCompleteAttribution(context.Background(), ds,
		unified.WithSeed(1), unified.WithPrivacy(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, res.EpsilonSpent, 1e-12, "ε accumulates across calls")
}

// TestCompute_PrivacyValidation verifies that a bad ε fails up front —
// before estimation — and charges nothing.
func TestCompute_PrivacyValidation(t *testing.T) {
	s := newSession(t)

	_, err := s.ComputeCompleteAttribution(context.Background(), scenarioDataset(t),
		unified.WithPrivacy(0))
	assert.ErrorIs(t, err, privacy.ErrInvalidEpsilon)
	assert.Zero(t, s.Budget().Spent())
}

// TestCompute_BudgetCeiling verifies the exceeded warning on a session with
// a configured ceiling.
func TestCompute_BudgetCeiling(t *testing.T) {
	s := newSession(t, privacy.WithSeed(9), privacy.WithCeiling(1.5))
	ds := scenarioDataset(t)

	res, err := s.ComputeCompleteAttribution(context.Background(), ds,
		unified.WithSeed(1), unified.WithPrivacy(1.0))
	require.NoError(t, err)
	assert.False(t, res.BudgetExceeded)

	res, err = s.ComputeCompleteAttribution(context.Background(), ds,
		unified.WithSeed(1), unified.WithPrivacy(1.0))
	require.NoError(t, err)
	assert.True(t, res.BudgetExceeded, "cumulative 2.0 passes the 1.5 ceiling")
	assert.Zero(t, s.Budget().Remaining())
}

// TestNewSession_InvalidCeiling verifies that a session with a malformed
// budget ceiling fails at construction instead of running unenforced.
func TestNewSession_InvalidCeiling(t *testing.T) {
	_, err := unified.NewSession(privacy.WithCeiling(-1))
	assert.ErrorIs(t, err, privacy.ErrInvalidCeiling)
}

// TestCompute_TableValueFunction verifies the indicator-table game source.
func TestCompute_TableValueFunction(t *testing.T) {
	tbl, err := journey.NewTable(
		[]string{"A", "B"},
		[][]bool{{true, true}, {false, true}, {true, false}},
		[]bool{true, true, false},
	)
	require.NoError(t, err)

	res, err := newSession(t).ComputeCompleteAttribution(
		context.Background(), scenarioDataset(t),
		unified.WithSeed(3), unified.WithTable(tbl))
	require.NoError(t, err)
	assert.GreaterOrEqual(t,
		res.Methods[unified.MethodShapley]["B"],
		res.Methods[unified.MethodShapley]["A"])
}

// TestCompute_CustomValueFunction verifies the caller-supplied game path
// and that component errors propagate as-is.
func TestCompute_CustomValueFunction(t *testing.T) {
	res, err := newSession(t).ComputeCompleteAttribution(
		context.Background(), scenarioDataset(t),
		unified.WithSeed(3),
		unified.WithValueFunction(func(coalition []string) (float64, error) {
			return float64(len(coalition)), nil
		}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Methods[unified.MethodShapley]["A"], 1e-12)
	assert.InDelta(t, 1.0, res.Methods[unified.MethodShapley]["B"], 1e-12)
}
