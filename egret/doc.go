// Package egret implements the result bundle used throughout WRTDS
// (Weighted Regressions on Time, Discharge, and Season) trend analysis.
//
// A Bundle holds four parts, each of which may be unavailable (nil):
//   - INFO: site and parameter metadata (Info)
//   - Daily: the daily discharge table
//   - Sample: the discrete, possibly censored, concentration table
//   - surfaces: the fitted regression surface matrix (14 rows)
//
// # Building a Bundle
//
// Construction never fails. Structural problems such as a sample table
// without censoring columns are logged as warnings:
//
//	info, _ := egret.ParseInfo([]byte("shortName: Choptank River\nparam.units: mg/l"))
//	b := egret.New(info,
//	    egret.WithDaily(daily),
//	    egret.WithSample(sample),
//	)
//
// Use Check to obtain the same findings as values:
//
//	for _, d := range egret.Check(info, daily, sample, nil) {
//	    fmt.Println(d)
//	}
//
// Merge joins separately loaded daily and sample tables, filling sample
// discharge from the daily series:
//
//	b := egret.Merge(info, daily, sample)
//
// # Accessing Parts
//
// The accessors accept either a *Bundle or a Mapping:
//
//	sample, err := egret.GetSample(b)
//	sample, err = egret.GetSample(egret.Mapping{"Sample": table})
//
// A Mapping without the expected key returns a *MissingFieldError.
//
// # Counting Observations
//
//	n, err := b.SampleCount()
//	censored, err := b.CensoredCount()
//	if errors.Is(err, egret.ErrNotFound) {
//	    // no sample data
//	}
//
// # Modeling
//
// The surface-estimation engine is an external collaborator. Estimate runs
// it and returns a new bundle, leaving the input untouched:
//
//	fitted, err := egret.Estimate(ctx, estimator, b)
package egret
