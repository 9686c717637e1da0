// Package main demonstrates building, checking and describing an egret
// bundle from in-memory discharge and nitrate data.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/sartorproj/goegret/egret"
	"github.com/sartorproj/goegret/internal/log"
	"github.com/sartorproj/goegret/timeseries"
)

const infoYAML = `
shortName: Choptank River near Greensboro, MD
paramShortName: Inorganic nitrogen (nitrate and nitrite)
param.units: mg/l as N
constitAbbrev: NO3
drainSqKm: 292.67
parameter_cd: "00631"
`

// Sample concentrations; an empty ConcLow marks a value below the detection limit.
const sampleCSV = `Date,ConcLow,ConcHigh
2001-01-10,1.32,1.32
2001-03-14,1.08,1.08
2001-05-22,,0.05
2001-07-18,0.94,0.94
2001-09-12,,0.05
2001-11-07,1.21,1.21
2002-02-06,1.40,1.40
2002-06-19,0.87,0.87
2003-01-15,1.55,1.55`

func main() {
	if err := log.Init(false); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("GoEGRET Demonstration - WRTDS data bundle")
	fmt.Println(strings.Repeat("=", 60))

	info, err := egret.ParseInfo([]byte(infoYAML))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	info, err = egret.SetPeriodOfAnalysis(info, 10, 12)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	daily, err := syntheticDaily(civil.Date{Year: 2001, Month: time.January, Day: 1}, 2*365)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	raw, err := timeseries.ReadCSV(strings.NewReader(sampleCSV), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sample := timeseries.RemoveDuplicates(timeseries.PopulateSample(sampleRecords(raw)))

	// Samples after the daily record ends are dropped with a warning.
	b := egret.Merge(info, daily, sample)

	fmt.Println()
	if err := b.Describe(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println()
	printCount("Daily observations", b.DailyCount)
	printCount("Sample observations", b.SampleCount)
	printCount("Censored samples", b.CensoredCount)

	if q, err := daily.Series(timeseries.ColQ); err == nil {
		fmt.Printf("Discharge: mean=%.2f median=%.2f min=%.2f max=%.2f cms\n",
			q.Mean(), q.Median(), q.Min(), q.Max())
	}

	for _, d := range egret.Check(info, daily, nil, nil) {
		fmt.Println("diagnostic:", d)
	}
}

// syntheticDaily builds a seasonal discharge record peaking in early spring.
func syntheticDaily(start civil.Date, n int) (*timeseries.Table, error) {
	dates := make([]civil.Date, n)
	q := make([]float64, n)
	for i := range dates {
		dates[i] = start.AddDays(i)
		dc := timeseries.DateColumnsOf(dates[i])
		q[i] = 4 + 3*math.Cos(2*math.Pi*(dc.DecYear-0.2))
	}
	return timeseries.PopulateDaily(dates, q)
}

func sampleRecords(t *timeseries.Table) []timeseries.SampleRecord {
	records := make([]timeseries.SampleRecord, t.Len())
	for i, d := range t.Dates {
		low, _ := t.Value(timeseries.ColConcLow, i)
		high, _ := t.Value(timeseries.ColConcHigh, i)
		records[i] = timeseries.SampleRecord{Date: d, ConcLow: low, ConcHigh: high, Q: math.NaN()}
	}
	return records
}

func printCount(label string, count func() (int, error)) {
	n, err := count()
	if err != nil {
		fmt.Printf("%s: %v\n", label, err)
		return
	}
	fmt.Printf("%s: %d\n", label, n)
}
