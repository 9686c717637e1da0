package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// CSVOptions holds options for decoding a delimited table.
type CSVOptions struct {
	DateColumn string // Column name for dates (default: "Date")
	DateFormat string // Preferred date format (default: "2006-01-02")
	Delimiter  rune   // Field delimiter (default: ',')
	SkipRows   int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV decoding.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn: "Date",
		DateFormat: "2006-01-02",
		Delimiter:  ',',
	}
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// ReadCSV decodes a header-led delimited table. The date column indexes the
// rows; every other column is parsed as a number, with empty, NA, NaN and
// null cells decoded as NaN. Rows whose date cannot be parsed are skipped.
func ReadCSV(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	dateCol := opts.DateColumn
	if dateCol == "" {
		dateCol = "Date"
	}
	dateIdx := -1
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if seen[h] {
			return nil, fmt.Errorf("duplicate column %q in header", h)
		}
		seen[h] = true
		names[i] = h
		if h == dateCol || (dateIdx == -1 && (h == "ds" || h == "date")) {
			dateIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, fmt.Errorf("date column %q not found", dateCol)
	}

	formats := dateFormats
	if opts.DateFormat != "" {
		formats = append([]string{opts.DateFormat}, dateFormats...)
	}

	var dates []civil.Date
	values := make([][]float64, len(names))

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if dateIdx >= len(record) {
			continue
		}

		d, ok := parseDate(cell(record[dateIdx]), formats)
		if !ok {
			continue
		}
		dates = append(dates, d)

		for i := range names {
			if i == dateIdx {
				continue
			}
			v := math.NaN()
			if i < len(record) {
				v = parseValue(cell(record[i]))
			}
			values[i] = append(values[i], v)
		}
	}

	if len(dates) == 0 {
		return nil, errors.New("no valid rows found in CSV")
	}

	t := NewTable(dates)
	for i, name := range names {
		if i == dateIdx {
			continue
		}
		if err := t.Set(name, values[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func cell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func parseDate(s string, formats []string) (civil.Date, bool) {
	for _, f := range formats {
		if ts, err := time.Parse(f, s); err == nil {
			return civil.DateOf(ts), true
		}
	}
	return civil.Date{}, false
}

func parseValue(s string) float64 {
	switch s {
	case "", "NA", "NaN", "null":
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
