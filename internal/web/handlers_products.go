package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cadastroapp/cadastro/internal/record"
)

// priceValue accepts a JSON number or a string; string values tolerate
// a comma decimal separator, matching what the frontend submits from
// pt-BR locale inputs.
type priceValue float64

func (p *priceValue) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", s)
		}
		*p = priceValue(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = priceValue(f)
	return nil
}

type productRequest struct {
	Name        string      `json:"name"`
	Price       *priceValue `json:"price"`
	Description string      `json:"description"`
}

// decodeProduct parses and validates a product payload. The price is a
// pointer so a missing field is distinguishable from a zero price.
func decodeProduct(w http.ResponseWriter, r *http.Request) (record.Product, bool) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return record.Product{}, false
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "field name is required")
		return record.Product{}, false
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, "field price is required")
		return record.Product{}, false
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "field description is required")
		return record.Product{}, false
	}
	p, err := record.NewProduct(req.Name, float64(*req.Price), req.Description)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return record.Product{}, false
	}
	return p, true
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.repo.ListProducts(r.Context())
	if err != nil {
		respondRepoError(w, r, err, "failed to list products")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: products, Count: len(products)})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	if err := s.repo.CreateProduct(r.Context(), p); err != nil {
		respondRepoError(w, r, err, "failed to create product")
		return
	}
	writeJSON(w, http.StatusCreated, mutationResponse{
		Success: true,
		Message: "product created",
		Data:    p,
	})
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	rowIndex, err := rowIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid row index")
		return
	}
	p, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	if err := s.repo.UpdateProduct(r.Context(), rowIndex, p); err != nil {
		respondRepoError(w, r, err, "failed to update product")
		return
	}
	p.RowIndex = rowIndex
	writeJSON(w, http.StatusOK, mutationResponse{
		Success: true,
		Message: "product updated",
		Data:    p,
	})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	rowIndex, err := rowIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid row index")
		return
	}
	if err := s.repo.DeleteProduct(r.Context(), rowIndex); err != nil {
		respondRepoError(w, r, err, "failed to delete product")
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{
		Success: true,
		Message: "product deleted",
	})
}
