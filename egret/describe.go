package egret

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sartorproj/goegret/timeseries"
)

// Describe writes a human-readable summary of the bundle to w: the first
// and last daily rows with discharge statistics, the first and last sample
// rows, and the cached site and parameter attributes.
func (b *Bundle) Describe(w io.Writer) error {
	if err := b.require("Describe"); err != nil {
		return err
	}

	var buf bytes.Buffer

	if n := b.daily.Len(); n > 0 {
		buf.WriteString("Daily discharge:\n")
		for _, i := range firstLast(n) {
			q, _ := b.daily.Value(timeseries.ColQ, i)
			fmt.Fprintf(&buf, "  %s  Q = %s\n", b.daily.Dates[i], num(q, b.daily.Has(timeseries.ColQ)))
		}
		if q, err := b.daily.Series(timeseries.ColQ); err == nil {
			fmt.Fprintf(&buf, "  %d days: mean = %s  std = %s  median = %s  min = %s  max = %s\n",
				q.Len(), num(q.Mean(), true), num(q.Std(), true), num(q.Median(), true),
				num(q.Min(), true), num(q.Max(), true))
		}
	}

	if n := b.sample.Len(); n > 0 {
		buf.WriteString("Sample data:\n")
		fmt.Fprintf(&buf, "  %-10s  %10s  %10s  %10s\n", "Date", "ConcLow", "ConcHigh", "Q")
		for _, i := range firstLast(n) {
			low, okLow := b.sample.Value(timeseries.ColConcLow, i)
			high, okHigh := b.sample.Value(timeseries.ColConcHigh, i)
			q, okQ := b.sample.Value(timeseries.ColQ, i)
			fmt.Fprintf(&buf, "  %-10s  %10s  %10s  %10s\n",
				b.sample.Dates[i], num(low, okLow), num(high, okHigh), num(q, okQ))
		}
	}

	a := b.attrs
	fmt.Fprintf(&buf, "Site: %s\n", text(a.ShortName))
	fmt.Fprintf(&buf, "Parameter: %s\n", text(a.ParamShortName))
	fmt.Fprintf(&buf, "Units: %s\n", text(a.ParamUnits))
	if a.DrainSqKm != nil {
		fmt.Fprintf(&buf, "Drainage area: %s km^2\n", num(*a.DrainSqKm, true))
	} else {
		buf.WriteString("Drainage area: NA\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// String returns the Describe output.
func (b *Bundle) String() string {
	var buf bytes.Buffer
	if err := b.Describe(&buf); err != nil {
		return err.Error()
	}
	return buf.String()
}

func firstLast(n int) []int {
	if n == 1 {
		return []int{0}
	}
	return []int{0, n - 1}
}

func num(v float64, ok bool) string {
	if !ok || math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func text(s *string) string {
	if s == nil {
		return "NA"
	}
	return *s
}
