package sheets

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_ReadDataRange(t *testing.T) {
	store := NewEmptyMemoryStore()
	ctx := context.Background()

	rows := [][]string{
		{"Maria", "12345678901", "maria@example.com"},
		{"João", "98765432100", "joao@example.com"},
	}
	if err := store.Append(ctx, "User", rows); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := store.Read(ctx, "User", "A2:C")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Read() returned %d rows, want 2", len(got))
	}
	if got[0][0] != "Maria" || got[1][0] != "João" {
		t.Errorf("Read() rows = %v", got)
	}
}

func TestMemoryStore_ReadWholeSheetIncludesHeader(t *testing.T) {
	store := NewEmptyMemoryStore()

	got, err := store.Read(context.Background(), "User", "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Read() returned %d rows, want header only", len(got))
	}
	if got[0][0] != "Name" {
		t.Errorf("header = %v", got[0])
	}
}

func TestMemoryStore_ReadTrimsTrailingEmptyCells(t *testing.T) {
	store := NewEmptyMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, "User", [][]string{{"Maria", "", ""}}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := store.Read(ctx, "User", "A2:C")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || len(got[0]) != 1 {
		t.Errorf("Read() = %v, want one row with one cell", got)
	}
}

func TestMemoryStore_UpdateOverwritesRow(t *testing.T) {
	store := NewEmptyMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, "User", [][]string{
		{"Maria", "12345678901", "maria@example.com"},
	}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if err := store.Update(ctx, "User", "A2:C2", [][]string{
		{"Maria Souza", "12345678901", "maria.souza@example.com"},
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.Read(ctx, "User", "A2:C")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got[0][0] != "Maria Souza" {
		t.Errorf("updated row = %v", got[0])
	}
}

func TestMemoryStore_UpdateBeyondEndExtendsSheet(t *testing.T) {
	store := NewEmptyMemoryStore()
	ctx := context.Background()

	if err := store.Update(ctx, "User", "A5:C5", [][]string{
		{"Maria", "12345678901", "maria@example.com"},
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.Read(ctx, "User", "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("sheet has %d rows after write at row 5, want 5", len(got))
	}
	if got[4][0] != "Maria" {
		t.Errorf("row 5 = %v", got[4])
	}
}

func TestMemoryStore_DeleteRowShiftsFollowingRows(t *testing.T) {
	store := NewEmptyMemoryStore()
	ctx := context.Background()

	if err := store.Append(ctx, "User", [][]string{
		{"Maria", "1", "maria@example.com"},
		{"João", "2", "joao@example.com"},
		{"Ana", "3", "ana@example.com"},
	}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// Row 3 is João; after deletion Ana moves from row 4 up to row 3.
	if err := store.DeleteRow(ctx, "User", 3); err != nil {
		t.Fatalf("DeleteRow() error = %v", err)
	}

	got, err := store.Read(ctx, "User", "A2:C")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Read() returned %d rows, want 2", len(got))
	}
	if got[1][0] != "Ana" {
		t.Errorf("row 3 after delete = %v, want Ana's row", got[1])
	}
}

func TestMemoryStore_DeleteRowOutOfRange(t *testing.T) {
	store := NewEmptyMemoryStore()

	err := store.DeleteRow(context.Background(), "User", 10)
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Errorf("DeleteRow(10) error = %v, want *UpstreamError", err)
	}
}

func TestMemoryStore_UnknownSheet(t *testing.T) {
	store := NewEmptyMemoryStore()
	ctx := context.Background()

	if _, err := store.Read(ctx, "Nope", ""); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Read() error = %v, want ErrSheetNotFound", err)
	}
	if err := store.DeleteRow(ctx, "Nope", 2); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("DeleteRow() error = %v, want ErrSheetNotFound", err)
	}
}

func TestParseRowSpan(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		wantErr    bool
	}{
		{"", 1, 0, false},
		{"A2:C", 2, 0, false},
		{"A5:C5", 5, 5, false},
		{"B3", 3, 3, false},
		{"A:C", 1, 0, false},
		{"2:C", 0, 0, true},
		{"A0:C", 0, 0, true},
	}

	for _, tt := range tests {
		start, end, err := parseRowSpan(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRowSpan(%q) error = nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRowSpan(%q) error = %v", tt.in, err)
			continue
		}
		if start != tt.start || end != tt.end {
			t.Errorf("parseRowSpan(%q) = (%d, %d), want (%d, %d)", tt.in, start, end, tt.start, tt.end)
		}
	}
}
