package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore simulates a spreadsheet in memory. It backs development
// mode, where no Google credentials or spreadsheet ID are configured,
// and the test suite. Semantics mirror the remote service: 1-based
// rows counting the header, RAW writes, row deletion shifting every
// later row up by one, and trailing empty cells trimmed on read.
type MemoryStore struct {
	mu            sync.Mutex
	spreadsheetID string
	grids         map[string][][]string
}

// NewMemoryStore returns a store seeded with the User and Product
// sheets and a handful of sample rows, the same shape the production
// spreadsheet carries.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		spreadsheetID: "sim-" + uuid.NewString(),
		grids: map[string][][]string{
			"User": {
				{"Name", "CPF", "Email"},
				{"Maria Silva", "123.456.789-01", "maria.silva@example.com"},
				{"João Santos", "98765432100", "joao.santos@example.com"},
				{"Ana Costa", "111.222.333-44", "ana.costa@example.com"},
			},
			"Product": {
				{"Name", "Price", "Description"},
				{"Caderno", "12,90", "Caderno espiral 96 folhas"},
				{"Caneta", "3.5", "Caneta esferográfica azul"},
				{"Mochila", "149,99", "Mochila escolar reforçada"},
			},
		},
	}
}

// NewEmptyMemoryStore returns a store with only the header rows.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{
		spreadsheetID: "sim-" + uuid.NewString(),
		grids: map[string][][]string{
			"User":    {{"Name", "CPF", "Email"}},
			"Product": {{"Name", "Price", "Description"}},
		},
	}
}

// SpreadsheetID returns the synthetic ID of the simulated spreadsheet.
func (m *MemoryStore) SpreadsheetID() string { return m.spreadsheetID }

func (m *MemoryStore) Read(ctx context.Context, sheetName, rangeA1 string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.grids[sheetName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	start, end, err := parseRowSpan(rangeA1)
	if err != nil {
		return nil, &UpstreamError{Op: "read", Sheet: sheetName, Err: err}
	}
	if end == 0 || end > len(grid) {
		end = len(grid)
	}
	if start > len(grid) {
		return nil, nil
	}

	var rows [][]string
	for _, row := range grid[start-1 : end] {
		rows = append(rows, trimRow(row))
	}
	// The remote service omits trailing rows that are entirely empty.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

func (m *MemoryStore) Update(ctx context.Context, sheetName, rangeA1 string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.grids[sheetName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	start, _, err := parseRowSpan(rangeA1)
	if err != nil {
		return &UpstreamError{Op: "update", Sheet: sheetName, Err: err}
	}

	// Writes past the current end grow the sheet, matching the remote
	// service's auto-extend behavior.
	for len(grid) < start-1+len(rows) {
		grid = append(grid, nil)
	}
	for i, row := range rows {
		grid[start-1+i] = append([]string(nil), row...)
	}
	m.grids[sheetName] = grid
	return nil
}

func (m *MemoryStore) Append(ctx context.Context, sheetName string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.grids[sheetName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	for _, row := range rows {
		grid = append(grid, append([]string(nil), row...))
	}
	m.grids[sheetName] = grid
	return nil
}

func (m *MemoryStore) DeleteRow(ctx context.Context, sheetName string, rowIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.grids[sheetName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	if rowIndex < 1 || rowIndex > len(grid) {
		return &UpstreamError{Op: "delete", Sheet: sheetName,
			Err: fmt.Errorf("row %d out of range (sheet has %d rows)", rowIndex, len(grid))}
	}
	m.grids[sheetName] = append(grid[:rowIndex-1], grid[rowIndex:]...)
	return nil
}

func trimRow(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return append([]string(nil), row[:end]...)
}

// parseRowSpan extracts the 1-based start and end rows from an A1
// range such as "A2:C", "A5:C5" or "B3". An empty range means the
// whole sheet; an omitted end row means open-ended (end = 0).
func parseRowSpan(rangeA1 string) (start, end int, err error) {
	if rangeA1 == "" {
		return 1, 0, nil
	}
	parts := strings.SplitN(rangeA1, ":", 2)
	start, err = cellRow(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unable to parse range %q", rangeA1)
	}
	if start == 0 {
		start = 1
	}
	if len(parts) == 1 {
		return start, start, nil
	}
	end, err = cellRow(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unable to parse range %q", rangeA1)
	}
	return start, end, nil
}

// cellRow returns the row number of an A1 cell reference, or 0 when the
// reference names only a column (as in the open end of "A2:C").
func cellRow(ref string) (int, error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(ref) {
		if i == 0 {
			return 0, fmt.Errorf("bad cell reference %q", ref)
		}
		return 0, nil
	}
	n := 0
	for ; i < len(ref); i++ {
		if ref[i] < '0' || ref[i] > '9' {
			return 0, fmt.Errorf("bad cell reference %q", ref)
		}
		n = n*10 + int(ref[i]-'0')
	}
	if n < 1 {
		return 0, fmt.Errorf("bad cell reference %q", ref)
	}
	return n, nil
}
