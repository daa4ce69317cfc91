// Package repository maps typed records onto raw sheet rows and
// sequences gateway calls for each CRUD verb. Unlike the layers below
// it, the repository knows the sheet names, the column layout and the
// row-index convention (header row 1, data from row 2).
//
// Errors keep their kind: validation problems arrive as
// *record.ValidationError from the constructors, gateway failures as
// sheets.ErrSheetNotFound or *sheets.UpstreamError, and bad row
// indices as ErrRowIndex. The HTTP layer maps each kind to a status.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cadastroapp/cadastro/internal/record"
	"github.com/cadastroapp/cadastro/internal/sheets"
)

const (
	userSheet    = "User"
	productSheet = "Product"

	// dataRange covers columns A-C from the first data row down,
	// excluding the header.
	dataRange = "A2:C"

	// firstDataRow is the 1-based index of the first data row.
	firstDataRow = 2
)

// ErrRowIndex reports a row index that cannot address a data row
// (anything below 2 would hit the header or nothing at all).
var ErrRowIndex = errors.New("row index must be 2 or greater")

// Repository performs record CRUD against an injected spreadsheet
// gateway. The gateway is fixed for the repository's lifetime.
type Repository struct {
	store sheets.Service
}

// New returns a Repository over the given gateway.
func New(store sheets.Service) *Repository {
	return &Repository{store: store}
}

// ListUsers reads the data rows of the User sheet and maps each onto a
// User carrying its 1-based row index. Rows with fewer than 3 cells
// are skipped rather than reported: hand-edited sheets routinely carry
// half-filled rows and a listing must survive them.
func (r *Repository) ListUsers(ctx context.Context) ([]record.User, error) {
	rows, err := r.store.Read(ctx, userSheet, dataRange)
	if err != nil {
		slog.Error("list users failed", "error", err)
		return nil, err
	}
	users := make([]record.User, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		users = append(users, record.UserFromRow(row, firstDataRow+i))
	}
	return users, nil
}

// ListProducts is the product counterpart of ListUsers. Price cells
// parse locale-tolerantly; an unparseable price becomes 0.0 instead of
// failing the listing.
func (r *Repository) ListProducts(ctx context.Context) ([]record.Product, error) {
	rows, err := r.store.Read(ctx, productSheet, dataRange)
	if err != nil {
		slog.Error("list products failed", "error", err)
		return nil, err
	}
	products := make([]record.Product, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		products = append(products, record.ProductFromRow(row, firstDataRow+i))
	}
	return products, nil
}

// CreateUser appends the user as one new row at the end of the sheet.
// The assigned row index is not reported back; callers re-list to
// learn it.
func (r *Repository) CreateUser(ctx context.Context, u record.User) error {
	if err := r.store.Append(ctx, userSheet, [][]string{u.Row()}); err != nil {
		slog.Error("create user failed", "error", err)
		return err
	}
	return nil
}

// CreateProduct appends the product as one new row.
func (r *Repository) CreateProduct(ctx context.Context, p record.Product) error {
	if err := r.store.Append(ctx, productSheet, [][]string{p.Row()}); err != nil {
		slog.Error("create product failed", "error", err)
		return err
	}
	return nil
}

// UpdateUser overwrites the 3-column range at rowIndex. Indices below
// the first data row fail fast with ErrRowIndex; writes past the
// current end of the sheet are left to the backend, which extends the
// sheet with blank-padded rows.
func (r *Repository) UpdateUser(ctx context.Context, rowIndex int, u record.User) error {
	if rowIndex < firstDataRow {
		return ErrRowIndex
	}
	if err := r.store.Update(ctx, userSheet, rowRange(rowIndex), [][]string{u.Row()}); err != nil {
		slog.Error("update user failed", "row", rowIndex, "error", err)
		return err
	}
	return nil
}

// UpdateProduct overwrites the 3-column range at rowIndex.
func (r *Repository) UpdateProduct(ctx context.Context, rowIndex int, p record.Product) error {
	if rowIndex < firstDataRow {
		return ErrRowIndex
	}
	if err := r.store.Update(ctx, productSheet, rowRange(rowIndex), [][]string{p.Row()}); err != nil {
		slog.Error("update product failed", "row", rowIndex, "error", err)
		return err
	}
	return nil
}

// DeleteUser removes the row at rowIndex. Every later row shifts up by
// one, so previously listed row indices below it go stale.
func (r *Repository) DeleteUser(ctx context.Context, rowIndex int) error {
	if rowIndex < firstDataRow {
		return ErrRowIndex
	}
	if err := r.store.DeleteRow(ctx, userSheet, rowIndex); err != nil {
		slog.Error("delete user failed", "row", rowIndex, "error", err)
		return err
	}
	return nil
}

// DeleteProduct removes the row at rowIndex.
func (r *Repository) DeleteProduct(ctx context.Context, rowIndex int) error {
	if rowIndex < firstDataRow {
		return ErrRowIndex
	}
	if err := r.store.DeleteRow(ctx, productSheet, rowIndex); err != nil {
		slog.Error("delete product failed", "row", rowIndex, "error", err)
		return err
	}
	return nil
}

// rowRange addresses the 3-column range of a single data row.
func rowRange(rowIndex int) string {
	return fmt.Sprintf("A%d:C%d", rowIndex, rowIndex)
}
