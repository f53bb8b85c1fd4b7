package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Table is the loaded form of a tabular file. The first CSV column holds
// row labels; the remaining columns are data addressed by header name.
// Indexing is column-first: Col narrows to one column, then Column.Row
// narrows to one cell.
type Table struct {
	columns []string   // header names, excluding the label column
	labels  []string   // row labels from the first column
	cells   [][]string // cells[row][col], aligned with columns
}

// Column is one selected table column, still addressable by row.
type Column struct {
	Name   string
	labels []string
	values []string
}

// parseTable parses CSV bytes into a Table.
func parseTable(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	t := &Table{}
	if len(records[0]) > 1 {
		t.columns = records[0][1:]
	}
	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		t.labels = append(t.labels, rec[0])
		row := make([]string, len(t.columns))
		copy(row, rec[1:])
		t.cells = append(t.cells, row)
	}
	return t, nil
}

// Columns returns the header names, excluding the row-label column.
func (t *Table) Columns() []string { return t.columns }

// Labels returns the row labels.
func (t *Table) Labels() []string { return t.labels }

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool { return len(t.cells) == 0 }

// Col selects a column by header name (string index) or position (int index).
func (t *Table) Col(idx any) (*Column, error) {
	pos := -1
	switch key := idx.(type) {
	case string:
		for i, name := range t.columns {
			if name == key {
				pos = i
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("%w: column %q (have %s)", ErrKeyMissing, key, strings.Join(t.columns, ", "))
		}
	default:
		p, ok := toIndex(idx)
		if !ok || p < 0 || p >= len(t.columns) {
			return nil, fmt.Errorf("%w: column index %v out of range (len %d)", ErrKeyMissing, idx, len(t.columns))
		}
		pos = p
	}
	col := &Column{Name: t.columns[pos], labels: t.labels}
	for _, row := range t.cells {
		col.values = append(col.values, row[pos])
	}
	return col, nil
}

// Cell selects a single cell by column then row index.
func (t *Table) Cell(colIdx, rowIdx any) (string, error) {
	col, err := t.Col(colIdx)
	if err != nil {
		return "", err
	}
	cell, err := col.Row(rowIdx)
	if err != nil {
		return "", err
	}
	return cell, nil
}

// Row selects one cell from the column by row label (string index) or
// position (int index).
func (c *Column) Row(idx any) (string, error) {
	switch key := idx.(type) {
	case string:
		for i, label := range c.labels {
			if label == key {
				return c.values[i], nil
			}
		}
		return "", fmt.Errorf("%w: row %q in column %q", ErrKeyMissing, key, c.Name)
	default:
		pos, ok := toIndex(idx)
		if !ok || pos < 0 || pos >= len(c.values) {
			return "", fmt.Errorf("%w: row index %v out of range (len %d)", ErrKeyMissing, idx, len(c.values))
		}
		return c.values[pos], nil
	}
}

// Values returns the column's cells in row order.
func (c *Column) Values() []string { return c.values }

// String renders the column as "label: value" lines for display.
func (c *Column) String() string {
	var b strings.Builder
	for i, v := range c.values {
		label := ""
		if i < len(c.labels) {
			label = c.labels[i]
		}
		fmt.Fprintf(&b, "%s: %s\n", label, v)
	}
	return b.String()
}
