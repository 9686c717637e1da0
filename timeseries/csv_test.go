package timeseries

import (
	"math"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestReadCSV(t *testing.T) {
	csvData := `Date,Q
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	table, err := ReadCSV(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if table.Len() != 5 {
		t.Errorf("Expected 5 rows, got %d", table.Len())
	}

	q, ok := table.Column("Q")
	if !ok {
		t.Fatal("Expected Q column")
	}
	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if q[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, q[i])
		}
	}

	want := civil.Date{Year: 2020, Month: time.January, Day: 1}
	if table.Dates[0] != want {
		t.Errorf("Expected first date %s, got %s", want, table.Dates[0])
	}
}

func TestReadCSVWithNAValues(t *testing.T) {
	csvData := `Date,ConcLow,ConcHigh
2020-01-01,1.5,1.5
2020-01-02,NA,0.1
2020-01-03,,0.2
2020-01-04,null,0.3`

	table, err := ReadCSV(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	low, _ := table.Column("ConcLow")
	if low[0] != 1.5 {
		t.Errorf("Expected 1.5, got %f", low[0])
	}
	for i := 1; i < 4; i++ {
		if !math.IsNaN(low[i]) {
			t.Errorf("Expected NaN at index %d, got %f", i, low[i])
		}
	}
}

func TestReadCSVSkipsUnparseableDates(t *testing.T) {
	csvData := `Date,Q
2020-01-01,1
not-a-date,2
2020-01-03,3`

	table, err := ReadCSV(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.Len())
	}
}

func TestReadCSVQuotedAndTabbed(t *testing.T) {
	csvData := "\"Date\"\t\"Q\"\n\"01/15/2020\"\t\"12.5\"\n\"01/16/2020\"\t\"13\""

	opts := DefaultCSVOptions()
	opts.Delimiter = '\t'
	opts.DateFormat = "01/02/2006"

	table, err := ReadCSV(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.Len())
	}
	if got := table.Dates[0]; got != (civil.Date{Year: 2020, Month: time.January, Day: 15}) {
		t.Errorf("Unexpected first date %s", got)
	}
}

func TestReadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{"no date column", "Flow,Q\n1,2"},
		{"no rows", "Date,Q\n"},
		{"empty input", ""},
		{"duplicate column", "Date,Q,Q\n2020-01-01,1,2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tc.csvData), nil); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.DateColumn != "Date" {
		t.Errorf("Expected default date column 'Date', got '%s'", opts.DateColumn)
	}

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
