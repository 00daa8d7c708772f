package moneta

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"time"
)

// Localized column headers of the transaction export.
const (
	ColDate        = "Дата операции"
	ColAmount      = "Сумма операции"
	ColCategory    = "Категория"
	ColDescription = "Описание"
	ColCard        = "Номер карты"
	ColCashback    = "Кешбэк"
)

// Sheet is a tabular view of the transaction export: the column headers in
// file order plus the raw string cells. A Sheet is never mutated; filtering
// produces a derived Sheet sharing the row slices.
type Sheet struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

// NewSheet builds a sheet from a header and rows. Every row must have one
// cell per column.
func NewSheet(cols []string, rows [][]string) (*Sheet, error) {
	s := &Sheet{cols: cols, index: make(map[string]int, len(cols))}
	for i, c := range cols {
		s.index[c] = i
	}
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i+1, len(row), len(cols))
		}
		s.rows = append(s.rows, row)
	}
	return s, nil
}

// LoadSheet reads the export from a CSV file. The first record is the
// localized header row.
func LoadSheet(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read transactions file %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("transactions file %q has no header row", path)
	}
	return NewSheet(records[0], records[1:])
}

// Columns returns the column headers in file order.
func (s *Sheet) Columns() []string { return slices.Clone(s.cols) }

// HasColumn reports whether the export carries the named column.
func (s *Sheet) HasColumn(name string) (ok bool) {
	_, ok = s.index[name]
	return ok
}

// Len returns the number of data rows.
func (s *Sheet) Len() int { return len(s.rows) }

// Cell returns the value at row i in the named column, or "" when the
// column does not exist.
func (s *Sheet) Cell(i int, col string) string {
	j, ok := s.index[col]
	if !ok {
		return ""
	}
	return s.rows[i][j]
}

// MonthOf returns the rows whose operation date parses and falls on or after
// the first day of ref's month. Rows with an unparseable date fall outside
// the window.
func (s *Sheet) MonthOf(ref time.Time) *Sheet {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return s.Filter(func(i int) bool {
		on, err := ParseStamp(s.Cell(i, ColDate))
		return err == nil && !on.Before(start)
	})
}

// Filter returns a derived sheet holding the rows for which keep returns
// true. Row order is preserved.
func (s *Sheet) Filter(keep func(i int) bool) *Sheet {
	out := &Sheet{cols: s.cols, index: s.index}
	for i := range s.rows {
		if keep(i) {
			out.rows = append(out.rows, s.rows[i])
		}
	}
	return out
}
