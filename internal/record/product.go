package record

import "strings"

// Product is one row of the "Product" sheet. RowIndex is 0 until the
// record has been persisted.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	RowIndex    int     `json:"row_index,omitempty"`
}

// NewProduct validates the given fields and returns a Product, or a
// *ValidationError naming the offending field.
func NewProduct(name string, price float64, description string) (Product, error) {
	if err := validateName("name", name); err != nil {
		return Product{}, err
	}
	if price < 0 {
		return Product{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if len(strings.TrimSpace(description)) < 5 {
		return Product{}, &ValidationError{Field: "description", Reason: "must have at least 5 characters"}
	}
	return Product{Name: name, Price: price, Description: description}, nil
}

// Row returns the product's A-C cell values in sheet column order.
func (p Product) Row() []string {
	return []string{p.Name, FormatPrice(p.Price), p.Description}
}

// ProductFromRow maps a raw sheet row onto a Product without validating
// it. The price cell is parsed locale-tolerantly via ParsePrice.
func ProductFromRow(row []string, rowIndex int) Product {
	return Product{
		Name:        cell(row, 0),
		Price:       ParsePrice(cell(row, 1)),
		Description: cell(row, 2),
		RowIndex:    rowIndex,
	}
}
