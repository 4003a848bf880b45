package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the fixed header row of spec.md §6's result CSV. No
// third-party CSV library appears anywhere in the retrieved corpus, so
// encoding/csv is the one stdlib choice in this module that needs no
// ecosystem justification beyond "nothing else in the pack offers one".
var csvHeader = []string{"Instance", "Method", "Profit", "Weight", "NumItems", "Time", "Feasible"}

// WriteCSV writes records to path, header first, one row per record.
// Elapsed time is formatted with exactly 6 fractional digits and
// feasibility as "Yes"/"No" per spec.md §6.
func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformat: create %s: %w", path, err)
	}
	defer f.Close()

	return WriteCSVTo(f, records)
}

// WriteCSVTo writes records to w in the same format as WriteCSV, for
// callers that already hold an open writer (tests, in-memory buffers).
func WriteCSVTo(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("ioformat: write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Instance,
			r.Method,
			fmt.Sprintf("%d", r.Profit),
			fmt.Sprintf("%d", r.Weight),
			fmt.Sprintf("%d", r.NumItems),
			fmt.Sprintf("%.6f", r.Time),
			feasibleString(r.Feasible),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ioformat: write row for %s/%s: %w", r.Instance, r.Method, err)
		}
	}
	return cw.Error()
}

func feasibleString(ok bool) string {
	if ok {
		return "Yes"
	}
	return "No"
}

// ReadCSV reads a result CSV previously written by WriteCSV, for callers
// (the `summary` subcommand) that reduce an already-produced CSV rather
// than a freshly-produced record slice. The header row is required and
// validated against csvHeader; a mismatched header is a format error.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformat: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSVFrom(f)
}

// ReadCSVFrom parses the result CSV format from r.
func ReadCSVFrom(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ioformat: read header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("ioformat: unexpected header %v", header)
	}
	for i, h := range csvHeader {
		if header[i] != h {
			return nil, fmt.Errorf("ioformat: unexpected header %v", header)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ioformat: read row: %w", err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	if len(row) != 7 {
		return Record{}, fmt.Errorf("ioformat: malformed row %v", row)
	}
	profit, err := strconv.Atoi(row[2])
	if err != nil {
		return Record{}, fmt.Errorf("ioformat: malformed profit in row %v: %w", row, err)
	}
	weight, err := strconv.Atoi(row[3])
	if err != nil {
		return Record{}, fmt.Errorf("ioformat: malformed weight in row %v: %w", row, err)
	}
	numItems, err := strconv.Atoi(row[4])
	if err != nil {
		return Record{}, fmt.Errorf("ioformat: malformed item count in row %v: %w", row, err)
	}
	elapsed, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return Record{}, fmt.Errorf("ioformat: malformed time in row %v: %w", row, err)
	}

	return Record{
		Instance: row[0],
		Method:   row[1],
		Profit:   profit,
		Weight:   weight,
		NumItems: numItems,
		Time:     elapsed,
		Feasible: row[6] == "Yes",
	}, nil
}
