package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/contract"
)

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := s.contracts.ListByOwner(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, list)
}

func (s *Server) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in contract.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, errors.NewValidationError("Corpo da requisição inválido", err.Error()))
		return
	}

	c, err := s.contracts.Create(r.Context(), p, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, c)
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := s.contracts.GetByID(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, c)
}

// handleContractDocument returns the rendered plain-text document. The
// same contract always renders to the same bytes.
func (s *Server) handleContractDocument(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc, err := s.contracts.Document(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
