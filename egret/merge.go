package egret

import (
	"math"

	"go.uber.org/zap"

	"github.com/sartorproj/goegret/timeseries"
)

// Merge builds a bundle from separately loaded parts. Sample discharge
// (Q, LogQ) is taken from the daily series on the same date; samples on
// days without a daily discharge are dropped with a warning. Info, daily
// and sample are not modified.
func Merge(info Info, daily, sample *timeseries.Table, opts ...Option) *Bundle {
	opts = append([]Option(nil), opts...)
	b := &Bundle{}
	for _, opt := range opts {
		opt(b)
	}
	logger := b.Logger()

	if daily == nil || sample == nil {
		return New(info, append(opts, WithDaily(daily), WithSample(sample))...)
	}

	lookup := timeseries.DischargeOn(daily)
	if lookup == nil {
		logger.Warn("daily data lacks a Q column, sample discharge left unset",
			zap.Stringer("part", PartDaily))
		return New(info, append(opts, WithDaily(daily), WithSample(sample))...)
	}

	merged := sample.Filter(func(i int) bool {
		q, ok := lookup[sample.Dates[i]]
		return ok && !math.IsNaN(q)
	})
	if dropped := sample.Len() - merged.Len(); dropped > 0 {
		logger.Warn("dropped samples without daily discharge",
			zap.Stringer("part", PartSample),
			zap.Int("rows", dropped),
		)
	}

	q := make([]float64, merged.Len())
	logQ := make([]float64, merged.Len())
	for i, d := range merged.Dates {
		q[i] = lookup[d]
		if q[i] > 0 {
			logQ[i] = math.Log(q[i])
		} else {
			logQ[i] = math.NaN()
		}
	}
	// Lengths match merged, so Set cannot fail.
	_ = merged.Set(timeseries.ColQ, q)
	_ = merged.Set(timeseries.ColLogQ, logQ)

	return New(info, append(opts, WithDaily(daily), WithSample(merged))...)
}
