package timeseries

import (
	"math"
	"sort"

	"cloud.google.com/go/civil"
)

// SampleRecord is one discrete water-quality observation. ConcLow is NaN
// when the lower bound is unknown, i.e. the value is below a detection
// limit of ConcHigh. Q may be NaN until discharge is merged from the daily
// series.
type SampleRecord struct {
	Date     civil.Date
	ConcLow  float64
	ConcHigh float64
	Q        float64
}

// Censored reports whether the observation is an interval rather than an exact value.
func (r SampleRecord) Censored() bool {
	return math.IsNaN(r.ConcLow) || r.ConcLow != r.ConcHigh
}

// PopulateSample builds a sample table sorted by date. ConcAve is the
// interval midpoint with an unknown lower bound treated as zero, and Uncen
// is 1 for exact values and 0 for censored ones.
func PopulateSample(records []SampleRecord) *Table {
	sorted := make([]SampleRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Date.Before(sorted[b].Date)
	})

	n := len(sorted)
	dates := make([]civil.Date, n)
	concLow := make([]float64, n)
	concHigh := make([]float64, n)
	uncen := make([]float64, n)
	concAve := make([]float64, n)
	q := make([]float64, n)
	logQ := make([]float64, n)

	for i, r := range sorted {
		dates[i] = r.Date
		concLow[i] = r.ConcLow
		concHigh[i] = r.ConcHigh

		low := r.ConcLow
		if math.IsNaN(low) {
			low = 0
		}
		concAve[i] = (low + r.ConcHigh) / 2
		if !r.Censored() {
			uncen[i] = 1
		}

		q[i] = r.Q
		if r.Q > 0 {
			logQ[i] = math.Log(r.Q)
		} else {
			logQ[i] = math.NaN()
		}
	}

	t := NewTable(dates)
	addDateColumns(t, true)
	_ = t.Set(ColConcLow, concLow)
	_ = t.Set(ColConcHigh, concHigh)
	_ = t.Set(ColUncen, uncen)
	_ = t.Set(ColConcAve, concAve)
	_ = t.Set(ColQ, q)
	_ = t.Set(ColLogQ, logQ)
	return t
}

// RemoveDuplicates drops sample rows that repeat an earlier row's date and
// ConcHigh value.
func RemoveDuplicates(sample *Table) *Table {
	high, ok := sample.Column(ColConcHigh)
	if !ok {
		return sample.Copy()
	}

	type key struct {
		date civil.Date
		high float64
	}
	seen := make(map[key]bool, sample.Len())
	return sample.Filter(func(i int) bool {
		k := key{sample.Dates[i], high[i]}
		if seen[k] {
			return false
		}
		seen[k] = true
		return true
	})
}

// CountEqual returns the number of rows whose column value equals v exactly.
func CountEqual(t *Table, name string, v float64) (int, bool) {
	col, ok := t.Column(name)
	if !ok {
		return 0, false
	}
	n := 0
	for _, x := range col {
		if x == v {
			n++
		}
	}
	return n, true
}
