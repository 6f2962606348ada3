package sheets

import (
	"context"
	"sync"
)

// Table is a grid of string cells addressed by 1-based sheet rows and 0-based columns.
type Table interface {
	AppendRows(ctx context.Context, rows [][]string) error
	ReadRows(ctx context.Context) ([][]string, error)
	UpdateCells(ctx context.Context, sheetRow int, firstCol int, values []string) error
}

var _ Table = &MemoryTable{}

// MemoryTable keeps the sheet in process. It backs local development and tests.
type MemoryTable struct {
	mu   sync.Mutex
	rows [][]string
}

func NewMemoryTable(rows ...[]string) *MemoryTable {
	t := &MemoryTable{}
	for _, r := range rows {
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	return t
}

func (t *MemoryTable) AppendRows(ctx context.Context, rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range rows {
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	return nil
}

func (t *MemoryTable) ReadRows(ctx context.Context) ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([][]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

func (t *MemoryTable) UpdateCells(ctx context.Context, sheetRow int, firstCol int, values []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for len(t.rows) < sheetRow {
		t.rows = append(t.rows, nil)
	}

	row := t.rows[sheetRow-1]
	for len(row) < firstCol+len(values) {
		row = append(row, "")
	}
	copy(row[firstCol:], values)
	t.rows[sheetRow-1] = row

	return nil
}
