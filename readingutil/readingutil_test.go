package readingutil

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpFloats = cmpopts.EquateApprox(0, 0.00001)

/*
 * ParseReadings
 */

func TestParseReadingsEmpty(t *testing.T) {
	readings, err := ParseReadings([]string{})
	if err != nil {
		t.Errorf("Error on empty list: %v", err)
	}

	if len(readings) != 0 {
		t.Errorf("Result list has len %v, expected it to be empty", len(readings))
	}
}

func TestParseReadingsValid(t *testing.T) {
	input := []string{"10.0", "-3.9", " 0.03 "}
	want := []float64{10.0, -3.9, 0.03}

	got, err := ParseReadings(input)
	if err != nil {
		t.Errorf("Error on valid input: %v", err)
	}

	if diff := cmp.Diff(got, want, cmpFloats); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}
}

func TestParseReadingsInvalid(t *testing.T) {
	_, err := ParseReadings([]string{"5.0", "spam", "spam", "spam",
		"baked beans", "spam"})
	if err == nil {
		t.Fatal("Expected error on invalid input, but error is nil")
	}

	if !strings.Contains(err.Error(), `"spam"`) {
		t.Errorf("Error %q does not name the invalid reading", err)
	}
}

func TestParseReadingsNonFinite(t *testing.T) {
	cases := []struct {
		name  string
		input []string
		want  string
	}{
		{"nan", []string{"1.0", "NaN"}, "NaN"},
		{"inf", []string{"Inf", "2.0"}, "+Inf"},
		{"negative_inf", []string{"-inf"}, "-Inf"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseReadings(c.input)
			if err == nil {
				t.Fatal("Expected error on non-finite input, but error is nil")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("Error %q does not name %q", err, c.want)
			}
		})
	}
}

func TestCheckFinite(t *testing.T) {
	if err := CheckFinite(1.0, -273.5, 0); err != nil {
		t.Errorf("Got error on finite readings: %v", err)
	}
	if err := CheckFinite(1.0, math.NaN()); err == nil {
		t.Error("Expected error for NaN, but error is nil")
	}
	if err := CheckFinite(math.Inf(-1)); err == nil {
		t.Error("Expected error for -Inf, but error is nil")
	}
}

/*
 * lineToReading
 */

func TestLineToReadingEmpty(t *testing.T) {
	if _, err := lineToReading([]string{}); err == nil {
		t.Error("Expected error on invalid input, but error is nil")
	}
}

func TestLineToReadingNoReadings(t *testing.T) {
	if _, err := lineToReading([]string{"2006-01-02T15:04:05.999999"}); err == nil {
		t.Error("Expected error on invalid input, but error is nil")
	}
}

func TestLineToReadingBadTimestamp(t *testing.T) {
	if _, err := lineToReading([]string{"yesterday", "18.5"}); err == nil {
		t.Error("Expected error on invalid input, but error is nil")
	}
}

func TestLineToReadingValid(t *testing.T) {
	got, err := lineToReading([]string{
		"2006-01-02T15:04:05.999999", "18.5", "18.0", "18.6"})
	if err != nil {
		t.Fatalf("Failed to convert line: %v", err)
	}

	if diff := cmp.Diff(got, 18.366667, cmpFloats); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}
}

/*
 * ReadCSV and LoadCSV
 */

const testCSV = `timestamp,temp1,temp2
2018-03-25T00:00:00.000000,3.0
2018-03-25T00:05:00.000000,-5.0
2018-03-25T00:10:00.000000,0.5,1.5
2018-03-25T00:15:00.000000,5.0
`

func TestReadCSV(t *testing.T) {
	cases := []struct {
		name    string
		csv     string
		want    []float64
		wantErr bool
	}{
		{"valid", testCSV, []float64{3.0, -5.0, 1.0, 5.0}, false},
		{"header_only", "timestamp,temp\n", nil, false},
		{"empty", "", nil, true},
		{"bad_reading", "timestamp,temp\n2018-03-25T00:00:00.000000,warm\n", nil, true},
		{"nan_reading", "timestamp,temp\n2018-03-25T00:00:00.000000,NaN\n", nil, true},
		{"short_line", "timestamp,temp\n2018-03-25T00:00:00.000000\n", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(c.csv))
			if gotErr := err != nil; gotErr != c.wantErr {
				t.Fatalf("Got error %v, expected error: %v", err, c.wantErr)
			}
			if c.wantErr {
				return
			}

			if diff := cmp.Diff(got, c.want, cmpFloats, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Unexpected result (-got +want):\n%s", diff)
			}
		})
	}
}

func TestReadCSVNamesLine(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("timestamp,temp\n2018-03-25T00:00:00.000000,1\n2018-03-25T00:05:00.000000,x\n"))
	if err == nil {
		t.Fatal("Expected error on invalid input, but error is nil")
	}

	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Error %q does not name line 3", err)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0644); err != nil {
		t.Fatalf("Failed to write CSV file: %v", err)
	}

	got, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("Got error, expected nil: %v", err)
	}

	if diff := cmp.Diff(got, []float64{3.0, -5.0, 1.0, 5.0}, cmpFloats); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}
}

func TestLoadCSVMissing(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Expected error for missing file, but error is nil")
	}
}
