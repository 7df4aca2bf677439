package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"StockStory/internal/model"
)

// ErrMissingColumn indicates the CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ParseError describes a cell that could not be coerced to its column's
// type. Line is 1-based and counts the header.
type ParseError struct {
	Line   int
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %q as %s", e.Line, e.Value, e.Column)
}

// DefaultNAValues are the literal tokens normalized to a missing-value
// marker in any column.
var DefaultNAValues = []string{"", "NA", "N/A", "null"}

// Accepted Date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Load reads the CSV at path into a raw observation table, preserving the
// file's row order. naValues may be nil to use DefaultNAValues. Columns
// not named in the data model are ignored.
func Load(path string, naValues []string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if naValues == nil {
		naValues = DefaultNAValues
	}
	na := make(map[string]bool, len(naValues))
	for _, v := range naValues {
		na[v] = true
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range model.RequiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	t := &model.Table{}
	_, hasHigh := idx[model.ColHigh]
	_, hasLow := idx[model.ColLow]
	_, hasVolume := idx[model.ColVolume]
	if hasHigh {
		t.High = []float64{}
	}
	if hasLow {
		t.Low = []float64{}
	}
	if hasVolume {
		t.Volume = []float64{}
	}

	line := 1
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line++

		date, err := parseDate(record[idx[model.ColDate]], na, line)
		if err != nil {
			return nil, err
		}
		open, err := parseNumber(record[idx[model.ColOpen]], model.ColOpen, na, line)
		if err != nil {
			return nil, err
		}
		cls, err := parseNumber(record[idx[model.ColClose]], model.ColClose, na, line)
		if err != nil {
			return nil, err
		}
		t.Dates = append(t.Dates, date)
		t.Open = append(t.Open, open)
		t.Close = append(t.Close, cls)

		if hasHigh {
			v, err := parseNumber(record[idx[model.ColHigh]], model.ColHigh, na, line)
			if err != nil {
				return nil, err
			}
			t.High = append(t.High, v)
		}
		if hasLow {
			v, err := parseNumber(record[idx[model.ColLow]], model.ColLow, na, line)
			if err != nil {
				return nil, err
			}
			t.Low = append(t.Low, v)
		}
		if hasVolume {
			v, err := parseNumber(record[idx[model.ColVolume]], model.ColVolume, na, line)
			if err != nil {
				return nil, err
			}
			t.Volume = append(t.Volume, v)
		}
	}

	log.Printf("[INFO] loaded %d rows from %s", t.Len(), path)
	return t, nil
}

func parseDate(raw string, na map[string]bool, line int) (time.Time, error) {
	if na[raw] {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, nil
		}
	}
	return time.Time{}, &ParseError{Line: line, Column: model.ColDate, Value: raw}
}

func parseNumber(raw, column string, na map[string]bool, line int) (float64, error) {
	if na[raw] {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Column: column, Value: raw}
	}
	return v, nil
}
