// Package timeseries provides the tabular data structures behind daily
// discharge and discrete water-quality sample records.
//
// # Tables
//
// A Table is a date-indexed, column-oriented frame:
//
//	t := timeseries.NewTable(dates)
//	err := t.Set("Q", discharge)
//	q, ok := t.Column("Q")
//
// # Daily Discharge
//
// Build a daily table with derived columns (LogQ, Q7, Q30, Julian,
// DecYear, MonthSeq, waterYear):
//
//	daily, err := timeseries.PopulateDaily(dates, q)
//
// # Samples
//
// Build a sample table from censored concentration observations:
//
//	sample := timeseries.PopulateSample([]timeseries.SampleRecord{
//	    {Date: d1, ConcLow: 0.8, ConcHigh: 0.8},        // exact value
//	    {Date: d2, ConcLow: math.NaN(), ConcHigh: 0.1}, // below detection limit
//	})
//
// Uncen is 1 for exact values and 0 for censored ones; ConcAve is the
// interval midpoint.
//
// # Series Statistics
//
// Any column can be viewed as a Series:
//
//	s, _ := daily.Series("Q")
//	mean := s.Mean()
//	median := s.Median()
//	q7 := s.MovingAverage(7)
//
// # Decoding Delimited Text
//
// Decode a header-led table from any reader:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.Delimiter = '\t'
//	table, err := timeseries.ReadCSV(r, opts)
package timeseries
