package egret

import (
	"context"
	"errors"
	"fmt"
)

// PlotOptions are passed through to the overview renderer.
type PlotOptions struct {
	LogScale    bool   // Plot concentration and discharge on log axes
	FluxUnit    string // Flux unit code (default: "kgDay")
	QUnit       string // Discharge unit code (default: "cms")
	CexTitle    float64
	PrintTitles bool
	Extra       map[string]any
}

// DefaultPlotOptions returns the default overview options.
func DefaultPlotOptions() *PlotOptions {
	return &PlotOptions{
		FluxUnit:    "kgDay",
		QUnit:       "cms",
		CexTitle:    1.2,
		PrintTitles: true,
	}
}

// OverviewRenderer draws the multi-panel data overview of a bundle.
type OverviewRenderer interface {
	MultiPanelOverview(ctx context.Context, b *Bundle, opts *PlotOptions) error
}

// ModelEstimator fits the WRTDS model to a bundle and returns a new bundle
// carrying the fitted surfaces.
type ModelEstimator interface {
	Estimate(ctx context.Context, b *Bundle) (*Bundle, error)
}

// Plot hands the bundle to the overview renderer.
func (b *Bundle) Plot(ctx context.Context, r OverviewRenderer, opts *PlotOptions) error {
	if err := b.require("Plot"); err != nil {
		return err
	}
	if r == nil {
		return errors.New("plot: no overview renderer")
	}
	if opts == nil {
		opts = DefaultPlotOptions()
	}
	return r.MultiPanelOverview(ctx, b, opts)
}

// Estimate runs est on b. The input bundle is left untouched; the
// estimator's result must itself be a bundle.
func Estimate(ctx context.Context, est ModelEstimator, b *Bundle) (*Bundle, error) {
	if !IsBundle(b) {
		return nil, &ContractViolationError{Op: "Estimate", Reason: "input is not a bundle"}
	}
	if est == nil {
		return nil, &ContractViolationError{Op: "Estimate", Reason: "no model estimator"}
	}
	if b.sample == nil || b.daily == nil {
		return nil, fmt.Errorf("estimate: bundle needs daily and sample data: %w", ErrNotFound)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := est.Estimate(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}
	if !IsBundle(out) {
		return nil, &ContractViolationError{Op: "Estimate", Reason: "estimator returned no bundle"}
	}
	return out, nil
}
