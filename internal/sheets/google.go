package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Client performs spreadsheet operations against the Google Sheets API.
// The underlying service must already be authorized; token refresh and
// interactive consent are the credential provider's concern.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient wraps an authorized Sheets service scoped to one spreadsheet.
func NewClient(svc *gsheets.Service, spreadsheetID string) *Client {
	return &Client{svc: svc, spreadsheetID: spreadsheetID}
}

// NewService builds an authorized Sheets API service from a Google
// credentials JSON file (service account or authorized user).
func NewService(ctx context.Context, credentialsFile string) (*gsheets.Service, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	svc, err := gsheets.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("build sheets service: %w", err)
	}
	return svc, nil
}

// SpreadsheetID returns the ID of the backing spreadsheet.
func (c *Client) SpreadsheetID() string { return c.spreadsheetID }

func (c *Client) Read(ctx context.Context, sheetName, rangeA1 string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, joinRange(sheetName, rangeA1)).
		Context(ctx).Do()
	if err != nil {
		return nil, &UpstreamError{Op: "read", Sheet: sheetName, Err: err}
	}
	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, v := range raw {
			row[j] = fmt.Sprint(v)
		}
		rows[i] = row
	}
	slog.Debug("sheet read", "sheet", sheetName, "range", rangeA1, "rows", len(rows))
	return rows, nil
}

func (c *Client) Update(ctx context.Context, sheetName, rangeA1 string, rows [][]string) error {
	body := &gsheets.ValueRange{Values: toValues(rows)}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, joinRange(sheetName, rangeA1), body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return &UpstreamError{Op: "update", Sheet: sheetName, Err: err}
	}
	return nil
}

func (c *Client) Append(ctx context.Context, sheetName string, rows [][]string) error {
	body := &gsheets.ValueRange{Values: toValues(rows)}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheetName, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return &UpstreamError{Op: "append", Sheet: sheetName, Err: err}
	}
	return nil
}

// DeleteRow resolves the sheet's numeric ID by title, then removes the
// row with a single batched DeleteDimension request. The dimension
// range is half-open and 0-based, so 1-based rowIndex maps to
// [rowIndex-1, rowIndex).
func (c *Client) DeleteRow(ctx context.Context, sheetName string, rowIndex int) error {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		return &UpstreamError{Op: "delete", Sheet: sheetName, Err: err}
	}

	sheetID := int64(-1)
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			sheetID = sh.Properties.SheetId
			break
		}
	}
	if sheetID < 0 {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex - 1),
					EndIndex:   int64(rowIndex),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return &UpstreamError{Op: "delete", Sheet: sheetName, Err: err}
	}
	slog.Debug("sheet row deleted", "sheet", sheetName, "row", rowIndex)
	return nil
}

func joinRange(sheetName, rangeA1 string) string {
	if rangeA1 == "" {
		return sheetName
	}
	return sheetName + "!" + rangeA1
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}
	return values
}
