package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/copygen"
)

func (s *Server) handleGenerateCopy(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in copygen.GenerateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, errors.NewValidationError("Corpo da requisição inválido", err.Error()))
		return
	}

	record, err := s.copies.Generate(r.Context(), p, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, record)
}

func (s *Server) handleListCopies(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := s.copies.ListByOwner(r.Context(), p.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, list)
}

func (s *Server) handleDeleteCopy(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.copies.Delete(r.Context(), p.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
