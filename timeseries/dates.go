package timeseries

import (
	"math"
	"time"

	"cloud.google.com/go/civil"
)

// Origin is the reference date for Julian day and month sequence numbering.
var Origin = civil.Date{Year: 1850, Month: time.January, Day: 1}

// DateColumns holds the calendar-derived columns attached to every daily
// and sample row.
type DateColumns struct {
	Julian    int     // Days since Origin
	Month     int     // Calendar month, 1-12
	Day       int     // Day of year, 1-366, with non-leap years skipping 60 (Feb 29)
	DecYear   float64 // Decimal year at mid-day
	MonthSeq  int     // Months since Origin, January 1850 = 1
	WaterYear int     // October-September water year
	SinDY     float64 // sin(2*pi*DecYear)
	CosDY     float64 // cos(2*pi*DecYear)
}

// DateColumnsOf computes the calendar-derived columns for d.
func DateColumnsOf(d civil.Date) DateColumns {
	t := d.In(time.UTC)
	yday := t.YearDay()
	leap := isLeap(d.Year)

	day := yday
	if !leap && yday >= 60 {
		day++
	}

	daysInYear := 365.0
	if leap {
		daysInYear = 366
	}
	decYear := float64(d.Year) + (float64(yday)-0.5)/daysInYear

	wy := d.Year
	if d.Month >= time.October {
		wy++
	}

	return DateColumns{
		Julian:    d.DaysSince(Origin),
		Month:     int(d.Month),
		Day:       day,
		DecYear:   decYear,
		MonthSeq:  (d.Year-Origin.Year)*12 + int(d.Month),
		WaterYear: wy,
		SinDY:     math.Sin(2 * math.Pi * decYear),
		CosDY:     math.Cos(2 * math.Pi * decYear),
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// addDateColumns appends Julian, Month, Day, DecYear, MonthSeq and
// waterYear columns to t, plus SinDY and CosDY when seasonal is set.
func addDateColumns(t *Table, seasonal bool) {
	n := t.Len()
	julian := make([]float64, n)
	month := make([]float64, n)
	day := make([]float64, n)
	decYear := make([]float64, n)
	monthSeq := make([]float64, n)
	waterYear := make([]float64, n)
	sinDY := make([]float64, n)
	cosDY := make([]float64, n)

	for i, d := range t.Dates {
		dc := DateColumnsOf(d)
		julian[i] = float64(dc.Julian)
		month[i] = float64(dc.Month)
		day[i] = float64(dc.Day)
		decYear[i] = dc.DecYear
		monthSeq[i] = float64(dc.MonthSeq)
		waterYear[i] = float64(dc.WaterYear)
		sinDY[i] = dc.SinDY
		cosDY[i] = dc.CosDY
	}

	// Lengths always match the table, so Set cannot fail here.
	_ = t.Set(ColJulian, julian)
	_ = t.Set(ColMonth, month)
	_ = t.Set(ColDay, day)
	_ = t.Set(ColDecYear, decYear)
	_ = t.Set(ColMonthSeq, monthSeq)
	_ = t.Set(ColWaterYear, waterYear)
	if seasonal {
		_ = t.Set(ColSinDY, sinDY)
		_ = t.Set(ColCosDY, cosDY)
	}
}
