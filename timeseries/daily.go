package timeseries

import (
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
)

// PopulateDaily builds a daily discharge table from dates and discharge
// values. Rows are sorted by date. The table carries Q, LogQ, the 7- and
// 30-day trailing means Q7 and Q30, and the calendar columns.
func PopulateDaily(dates []civil.Date, q []float64) (*Table, error) {
	if len(dates) != len(q) {
		return nil, errors.New("dates and discharge must have the same length")
	}

	idx := make([]int, len(dates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return dates[idx[a]].Before(dates[idx[b]])
	})

	sortedDates := make([]civil.Date, len(idx))
	sortedQ := make([]float64, len(idx))
	for j, i := range idx {
		sortedDates[j] = dates[i]
		sortedQ[j] = q[i]
	}
	for i := 1; i < len(sortedDates); i++ {
		if sortedDates[i] == sortedDates[i-1] {
			return nil, fmt.Errorf("duplicate daily date %s", sortedDates[i])
		}
	}

	t := NewTable(sortedDates)
	addDateColumns(t, false)

	series := &Series{Dates: sortedDates, Values: sortedQ, Name: ColQ}
	if err := t.Set(ColQ, sortedQ); err != nil {
		return nil, err
	}
	if err := t.Set(ColLogQ, series.Log().Values); err != nil {
		return nil, err
	}
	if err := t.Set(ColQ7, series.MovingAverage(7).Values); err != nil {
		return nil, err
	}
	if err := t.Set(ColQ30, series.MovingAverage(30).Values); err != nil {
		return nil, err
	}
	return t, nil
}

// DischargeOn returns a lookup of discharge by date for a table with a Q column.
func DischargeOn(daily *Table) map[civil.Date]float64 {
	q, ok := daily.Column(ColQ)
	if !ok {
		return nil
	}
	lookup := make(map[civil.Date]float64, len(q))
	for i, d := range daily.Dates {
		lookup[d] = q[i]
	}
	return lookup
}
