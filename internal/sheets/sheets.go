// Package sheets is the data gateway to the backing spreadsheet. It
// exposes range-scoped read, overwrite, append and row-delete
// operations against named sheets, with exactly-once-per-call
// semantics: there is no retry loop, a failed call surfaces to the
// caller.
//
// Two backends implement the Service interface: Client talks to the
// Google Sheets API, MemoryStore simulates a spreadsheet in memory for
// development mode and tests.
package sheets

import (
	"context"
	"errors"
	"fmt"
)

// Service performs raw spreadsheet operations. Row indices are 1-based
// and count the header row; A1 ranges are relative to the named sheet.
type Service interface {
	// Read returns the rows covered by rangeA1, which may be jagged
	// (trailing empty cells are trimmed by the backend). An empty
	// rangeA1 reads the whole sheet.
	Read(ctx context.Context, sheetName, rangeA1 string) ([][]string, error)

	// Update overwrites rangeA1 with the given rows, row-major, raw
	// (no formula evaluation).
	Update(ctx context.Context, sheetName, rangeA1 string, rows [][]string) error

	// Append inserts rows after the sheet's existing data, shifting
	// nothing else.
	Append(ctx context.Context, sheetName string, rows [][]string) error

	// DeleteRow removes exactly the row at the 1-based rowIndex. Every
	// row below it shifts up by one. Fails with ErrSheetNotFound if no
	// sheet carries that name.
	DeleteRow(ctx context.Context, sheetName string, rowIndex int) error
}

// ErrSheetNotFound reports that the spreadsheet has no sheet with the
// requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// UpstreamError wraps a transport or API failure from the remote
// spreadsheet service.
type UpstreamError struct {
	Op    string
	Sheet string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("sheets %s %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
