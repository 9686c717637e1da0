// Package goegret provides the data layer for exploring long-term
// water-quality and streamflow trends with WRTDS (Weighted Regressions on
// Time, Discharge, and Season).
//
// # Features
//
//   - Result bundle holding site metadata, daily discharge, discrete
//     samples and the fitted surfaces matrix
//   - Permissive construction with structured diagnostics
//   - Part accessors over bundles or plain mappings
//   - Observation and censored-value counts
//   - Daily and sample table population (LogQ, Q7, Q30, DecYear, ...)
//
// # Quick Start
//
// Build and describe a bundle:
//
//	daily, _ := timeseries.PopulateDaily(dates, q)
//	sample := timeseries.PopulateSample(records)
//	b := egret.Merge(info, daily, sample)
//	b.Describe(os.Stdout)
//	censored, _ := b.CensoredCount()
//
// # Packages
//
// The library is organized into the following packages:
//
//   - egret: The result bundle, accessors and count helpers
//   - timeseries: Date-indexed tables and series utilities
//
// # References
//
//   - Hirsch, R.M., Moyer, D.L., & Archfield, S.A. (2010). Weighted Regressions
//     on Time, Discharge, and Season (WRTDS). JAWRA 46(5)
//   - Hirsch, R.M., & De Cicco, L.A. (2015). User guide to Exploration and
//     Graphics for RivEr Trends (EGRET). USGS Techniques and Methods 4-A10
package goegret
