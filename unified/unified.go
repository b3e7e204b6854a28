// Package unified - the end-to-end attribution computation.
package unified

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/attribkit/hybrid"
	"github.com/katalvlaran/attribkit/journey"
	"github.com/katalvlaran/attribkit/markov"
	"github.com/katalvlaran/attribkit/privacy"
	"github.com/katalvlaran/attribkit/shapley"
)

// ComputeCompleteAttribution runs the full pipeline over ds.
//
// Stages:
//  1. Shapley estimation and Markov attribution run concurrently; they
//     share no mutable state (the dataset is immutable).
//  2. Both vectors blend into the hybrid (α from WithAlpha).
//  3. With WithPrivacy(ε), the hybrid is additionally released under the
//     Laplace mechanism and the session budget advances.
//
// Contracts:
//   - ds must be non-nil (ErrNilDataset); an empty dataset is legal and
//     yields zero vectors.
//   - component errors propagate as-is (their sentinel messages identify
//     the originating package); no partial result accompanies an error.
//   - ε is validated before any estimation starts, so an invalid privacy
//     request never pays the sampling cost.
//
// Complexity: max(shapley, markov) wall-clock under concurrency; the
// privacy stage is O(channels).
func (s *Session) ComputeCompleteAttribution(ctx context.Context, ds *journey.Dataset, opts ...Option) (Result, error) {
	start := time.Now()

	if ds == nil {
		return Result{}, ErrNilDataset
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var sensitivity float64
	if cfg.withPrivacy {
		if err := validatePrivacyConfig(&cfg, ds, &sensitivity); err != nil {
			return Result{}, err
		}
	}

	model, err := markov.New(ds)
	if err != nil {
		return Result{}, err
	}

	fn := cfg.value
	switch {
	case fn != nil:
		// caller-supplied game
	case cfg.table != nil:
		fn = cfg.table.Value()
	default:
		fn = journey.ConversionRateValue(ds)
	}

	var (
		shap       shapley.Result
		effects    markov.Effects
		markovAttr map[string]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var serr error
		shap, serr = shapley.Estimate(gctx, ds.Channels(), fn,
			shapley.WithSampleCount(cfg.sampleCount),
			shapley.WithWorkers(cfg.workers),
			shapley.WithSeed(cfg.seed),
		)

		return serr
	})
	g.Go(func() error {
		var merr error
		if effects, merr = model.RemovalEffects(); merr != nil {
			return merr
		}
		markovAttr, merr = model.Attribution()

		return merr
	})
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	// An empty channel universe has nothing to blend; keep the zero vector
	// rather than tripping hybrid.ErrNoInput.
	blend := map[string]float64{}
	if len(shap.Values) > 0 || len(markovAttr) > 0 {
		if blend, err = hybrid.Combine(shap.Values, markovAttr, hybrid.WithAlpha(cfg.alpha)); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Methods: map[string]map[string]float64{
			MethodShapley: shap.Values,
			MethodMarkov:  markovAttr,
			MethodHybrid:  blend,
		},
		Shapley: shap,
		Effects: effects,
	}

	if cfg.withPrivacy {
		noisy, exceeded, perr := s.mech.Privatize(blend, cfg.epsilon, sensitivity)
		if perr != nil {
			return Result{}, perr
		}
		res.Methods[MethodPrivate] = noisy
		res.EpsilonSpent = s.mech.Budget().Spent()
		res.BudgetExceeded = exceeded
	} else {
		res.EpsilonSpent = s.mech.Budget().Spent()
	}

	res.Elapsed = time.Since(start)

	return res, nil
}

// validatePrivacyConfig resolves ε and Δf before estimation starts: an
// invalid privacy request must fail without producing (or paying for) any
// attribution output.
func validatePrivacyConfig(cfg *Options, ds *journey.Dataset, sensitivity *float64) error {
	// Cheap dry validation: charge nothing, draw nothing.
	if _, err := privacy.SimpleComposition([]float64{cfg.epsilon}); err != nil {
		return err
	}
	if cfg.sensitivity != 0 {
		*sensitivity = cfg.sensitivity

		return nil
	}
	df, err := privacy.SensitivityForCount(ds.Len())
	if err != nil {
		return err
	}
	*sensitivity = df

	return nil
}
