// Package record defines the validated value objects stored in the
// backing spreadsheet: User and Product. Each record maps to one sheet
// row across columns A-C, with a 1-based RowIndex assigned once the
// record is persisted (the header occupies row 1, data starts at row 2).
//
// Constructors validate their inputs and refuse to build an invalid
// instance. Records read back from the sheet bypass validation: the
// sheet is the source of truth and listing must not fail on rows that
// were edited by hand.
package record

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError reports a single field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// validateName checks the shared name rule for both record types.
func validateName(field, name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return &ValidationError{Field: field, Reason: "must have at least 2 characters"}
	}
	return nil
}

// ParsePrice converts a sheet cell into a price. Spreadsheets edited in
// pt-BR locales store decimals with a comma, so the comma is normalized
// to a period before parsing. Unparseable cells yield 0.0 rather than
// an error so that one bad cell cannot break a whole listing.
func ParsePrice(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// FormatPrice renders a price for storage in a sheet cell.
func FormatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
