// Package readingutil parses temperature readings from strings and CSV files.
package readingutil

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

// TimeFormat is the layout of the timestamp in the first column of a CSV row.
const TimeFormat = "2006-01-02T15:04:05.999999"

// ParseReadings parses each string as a reading in degrees Celsius. NaN and
// infinities are rejected.
func ParseReadings(strs []string) ([]float64, error) {
	readings := make([]float64, 0, len(strs))
	for _, v := range strs {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return readings, fmt.Errorf("invalid reading %q: %w", v, err)
		}
		if err := CheckFinite(f); err != nil {
			return readings, err
		}
		readings = append(readings, f)
	}
	return readings, nil
}

// CheckFinite returns an error naming the first reading that is NaN or
// infinite.
func CheckFinite(readings ...float64) error {
	for _, r := range readings {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("invalid reading %v: must be a finite number", r)
		}
	}
	return nil
}

func mean(x []float64) float64 {
	var total float64
	for _, v := range x {
		total += v
	}
	return total / float64(len(x))
}

// lineToReading converts one row of the form timestamp,temp1,temp2,... to a
// single reading. Rows with several temperatures are averaged.
func lineToReading(line []string) (float64, error) {
	if len(line) < 2 {
		return 0, errors.New("line length must be at least 2 (timestamp and one reading)")
	}

	if _, err := time.Parse(TimeFormat, line[0]); err != nil {
		return 0, err
	}

	temps, err := ParseReadings(line[1:])
	if err != nil {
		return 0, err
	}

	return mean(temps), nil
}

// ReadCSV reads one reading per row from r. The first row must be column
// headers and is skipped.
func ReadCSV(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err == io.EOF {
		return nil, errors.New("CSV has no header line")
	} else if err != nil {
		return nil, err
	}

	var readings []float64
	for lineNum := 2; ; lineNum++ {
		line, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		reading, err := lineToReading(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// LoadCSV reads readings from the CSV file at path. A leading ~ is expanded to
// the user's home directory.
func LoadCSV(path string) ([]float64, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expanded)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}
