package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cadastroapp/cadastro/internal/record"
)

type userRequest struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

// decodeUser parses and validates a user payload. When it returns
// false the error response has already been written.
func decodeUser(w http.ResponseWriter, r *http.Request) (record.User, bool) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return record.User{}, false
	}
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"cpf", req.CPF},
		{"email", req.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			writeError(w, http.StatusBadRequest, "field "+f.name+" is required")
			return record.User{}, false
		}
	}
	u, err := record.NewUser(req.Name, req.CPF, req.Email)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return record.User{}, false
	}
	return u, true
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.repo.ListUsers(r.Context())
	if err != nil {
		respondRepoError(w, r, err, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: users, Count: len(users)})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	u, ok := decodeUser(w, r)
	if !ok {
		return
	}
	if err := s.repo.CreateUser(r.Context(), u); err != nil {
		respondRepoError(w, r, err, "failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, mutationResponse{
		Success: true,
		Message: "user created",
		Data:    u,
	})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	rowIndex, err := rowIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid row index")
		return
	}
	u, ok := decodeUser(w, r)
	if !ok {
		return
	}
	if err := s.repo.UpdateUser(r.Context(), rowIndex, u); err != nil {
		respondRepoError(w, r, err, "failed to update user")
		return
	}
	u.RowIndex = rowIndex
	writeJSON(w, http.StatusOK, mutationResponse{
		Success: true,
		Message: "user updated",
		Data:    u,
	})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	rowIndex, err := rowIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid row index")
		return
	}
	if err := s.repo.DeleteUser(r.Context(), rowIndex); err != nil {
		respondRepoError(w, r, err, "failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{
		Success: true,
		Message: "user deleted",
	})
}
