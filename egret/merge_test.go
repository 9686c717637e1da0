package egret

import (
	"math"
	"testing"

	"github.com/sartorproj/goegret/timeseries"
)

func TestMergeFillsSampleDischarge(t *testing.T) {
	logger, logs := observed()
	daily := makeDaily(30)
	sample := timeseries.PopulateSample([]timeseries.SampleRecord{
		{Date: start.AddDays(3), ConcLow: 1, ConcHigh: 1, Q: math.NaN()},
		{Date: start.AddDays(10), ConcLow: math.NaN(), ConcHigh: 0.1, Q: math.NaN()},
		{Date: start.AddDays(45), ConcLow: 2, ConcHigh: 2, Q: math.NaN()},
	})

	b := Merge(Info{FieldShortName: "X"}, daily, sample, WithLogger(logger))

	merged, _ := GetSample(b)
	if merged.Len() != 2 {
		t.Fatalf("Expected 2 samples within the daily record, got %d", merged.Len())
	}

	q, _ := merged.Column(timeseries.ColQ)
	if q[0] != 13 || q[1] != 20 {
		t.Errorf("Expected Q [13 20], got %v", q)
	}
	logQ, _ := merged.Column(timeseries.ColLogQ)
	if math.Abs(logQ[0]-math.Log(13)) > 1e-12 {
		t.Errorf("Expected LogQ %f, got %f", math.Log(13), logQ[0])
	}

	if logs.Len() != 1 || logs.All()[0].ContextMap()["rows"] != int64(1) {
		t.Errorf("Expected one warning about 1 dropped row, got %v", logs.All())
	}

	if orig, _ := sample.Value(timeseries.ColQ, 0); !math.IsNaN(orig) {
		t.Error("Merge should not modify the input sample")
	}
	if n, _ := b.CensoredCount(); n != 1 {
		t.Errorf("Expected 1 censored sample, got %d", n)
	}
}

func TestMergeWithoutDaily(t *testing.T) {
	logger, _ := observed()
	sample := makeSample(1, 0)

	b := Merge(Info{FieldShortName: "X"}, nil, sample, WithLogger(logger))
	if got, _ := GetSample(b); got != sample {
		t.Error("Sample should pass through unchanged without daily data")
	}
	if _, err := b.DailyCount(); err == nil {
		t.Error("Expected daily to be unavailable")
	}
}

func TestMergeDailyWithoutQ(t *testing.T) {
	logger, logs := observed()
	daily := timeseries.NewTable(makeDaily(3).Dates)
	sample := makeSample(1)

	b := Merge(Info{FieldShortName: "X"}, daily, sample, WithLogger(logger))
	if got, _ := GetSample(b); got != sample {
		t.Error("Sample should pass through unchanged")
	}
	// One warning from Merge, one from the constructor check.
	if logs.Len() != 2 {
		t.Errorf("Expected 2 warnings, got %d", logs.Len())
	}
}

func TestMergeLeavesCallerOptionsIntact(t *testing.T) {
	logger, _ := observed()
	other := makeSample(1, 1, 1, 1)

	opts := make([]Option, 1, 4)
	opts[0] = WithLogger(logger)
	spare := opts[:4]
	spare[1] = WithSample(other)

	Merge(Info{FieldShortName: "X"}, makeDaily(30), makeSample(1, 0), opts...)

	b := New(Info{FieldShortName: "X"}, spare[:2]...)
	if got, _ := GetSample(b); got != other {
		t.Error("Merge should not write into the spare capacity of the options slice")
	}
}
