package growth_sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CurveTable is one shared time axis plus named value series aligned to it.
// Names preserves insertion order so output reads in the same order the
// curves were generated (or appeared in an input file).
type CurveTable struct {
	Times  []float64
	Names  []string
	Series map[string][]float64
}

func NewCurveTable(times []float64) CurveTable {
	return CurveTable{Times: times, Series: make(map[string][]float64)}
}

// AddSeries registers a named series. values must be aligned with Times.
func (ct *CurveTable) AddSeries(name string, values []float64) {
	ct.Names = append(ct.Names, name)
	ct.Series[name] = values
}

// Head formats the first n rows of the table for a terminal preview.
func (ct CurveTable) Head(n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s", "Time")
	for _, name := range ct.Names {
		fmt.Fprintf(&sb, "%12s", name)
	}
	sb.WriteByte('\n')

	if n > len(ct.Times) {
		n = len(ct.Times)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%-10.3f", ct.Times[i])
		for _, name := range ct.Names {
			fmt.Fprintf(&sb, "%12.3f", ct.Series[name][i])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteCSV writes the table with a "Time,<name>,..." header and one row per
// time point.
func (ct CurveTable) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Time"}, ct.Names...)
	if err := writer.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, t := range ct.Times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, name := range ct.Names {
			row[j+1] = strconv.FormatFloat(ct.Series[name][i], 'g', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCurveTableCSV parses a table written by WriteCSV (or any CSV shaped
// like it: a leading Time column plus at least one curve column).
func ReadCurveTableCSV(r io.Reader) (CurveTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return CurveTable{}, fmt.Errorf("reading curve table: %w", err)
	}
	if len(records) < 2 {
		return CurveTable{}, fmt.Errorf("curve table needs a header and at least one data row")
	}

	header := records[0]
	if len(header) < 2 || header[0] != "Time" {
		return CurveTable{}, fmt.Errorf("curve table header must be Time followed by at least one curve name")
	}

	table := NewCurveTable(make([]float64, 0, len(records)-1))
	for _, name := range header[1:] {
		table.AddSeries(name, make([]float64, 0, len(records)-1))
	}

	for n, record := range records[1:] {
		if len(record) != len(header) {
			return CurveTable{}, fmt.Errorf("row %d has %d fields, header has %d", n+1, len(record), len(header))
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return CurveTable{}, fmt.Errorf("row %d: bad time value %q: %w", n+1, record[0], err)
		}
		table.Times = append(table.Times, t)
		for j, name := range header[1:] {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return CurveTable{}, fmt.Errorf("row %d, column %s: bad value %q: %w", n+1, name, record[j+1], err)
			}
			table.Series[name] = append(table.Series[name], v)
		}
	}
	return table, nil
}
