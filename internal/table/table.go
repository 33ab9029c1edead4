// Package table maintains the output table: one row per processed document,
// keyed by document identifier. Upsert semantics are explicit (load rows
// into a keyed map, overwrite-or-insert, re-serialize in stable order)
// rather than delegated to a tabular library's merge behavior.
package table

import (
	"path/filepath"
	"slices"

	"github.com/planclip/planclip/constants"
)

// Table is the in-memory output table. Column order and row order are
// stable: columns are the key column, the domain vocabulary, then any
// template-only labels; rows keep first-insert order.
type Table struct {
	columns []string
	keys    []string
	rows    map[string]map[string]string
}

// New builds an empty table whose columns cover the domain vocabulary plus
// any extra labels the template defines. Domain columns are always present
// even when the template omits them; their fields stay empty.
func New(labels []string) *Table {
	columns := []string{constants.KeyColumn}
	columns = append(columns, constants.DomainLabels()...)
	for _, l := range labels {
		if !slices.Contains(columns, l) {
			columns = append(columns, l)
		}
	}
	return &Table{
		columns: columns,
		rows:    make(map[string]map[string]string),
	}
}

// Columns returns the column names in serialization order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Keys returns the row keys in serialization order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *Table) Len() int {
	return len(t.keys)
}

// Row returns a copy of the record for key.
func (t *Table) Row(key string) (map[string]string, bool) {
	row, ok := t.rows[key]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out, true
}

// Upsert inserts or replaces the record for key. A replaced row keeps its
// position; re-processing a document never duplicates it. Fields outside
// the column set are dropped, missing fields stay empty.
func (t *Table) Upsert(key string, fields map[string]string) {
	row := make(map[string]string, len(t.columns))
	row[constants.KeyColumn] = key
	for _, col := range t.columns[1:] {
		row[col] = fields[col]
	}
	if _, exists := t.rows[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.rows[key] = row
}

func isXLSX(path string) bool {
	return filepath.Ext(path) == ".xlsx"
}

// Load reads the table at path, or returns an empty table when the file
// does not exist yet. Labels define the column set; columns present in the
// file but absent from the vocabulary and the template are dropped.
func Load(path string, labels []string) (*Table, error) {
	if isXLSX(path) {
		return loadXLSX(path, labels)
	}
	return loadCSV(path, labels)
}

// Save writes the table to path, CSV or XLSX by extension.
func (t *Table) Save(path string) error {
	if isXLSX(path) {
		return t.saveXLSX(path)
	}
	return t.saveCSV(path)
}

// fromRecords rebuilds a table from a header row plus data rows, shared by
// the CSV and XLSX loaders.
func fromRecords(header []string, records [][]string, labels []string) *Table {
	t := New(labels)
	keyIdx := slices.Index(header, constants.KeyColumn)
	if keyIdx < 0 {
		keyIdx = 0 // legacy files: first column is the identifier
	}
	for _, rec := range records {
		if keyIdx >= len(rec) || rec[keyIdx] == "" {
			continue
		}
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				fields[col] = rec[i]
			}
		}
		t.Upsert(rec[keyIdx], fields)
	}
	return t
}

// records flattens the table for serialization: header row first, then one
// row per key in stable order.
func (t *Table) records() [][]string {
	out := make([][]string, 0, len(t.keys)+1)
	out = append(out, t.Columns())
	for _, key := range t.keys {
		row := t.rows[key]
		rec := make([]string, len(t.columns))
		for i, col := range t.columns {
			rec[i] = row[col]
		}
		out = append(out, rec)
	}
	return out
}
