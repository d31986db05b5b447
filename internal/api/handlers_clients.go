package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bcstudio-server/internal/clients"
	"bcstudio-server/internal/common/errors"
)

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := s.clients.ListByOwner(r.Context(), p.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, list)
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in clients.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, errors.NewValidationError("Corpo da requisição inválido", err.Error()))
		return
	}

	c, err := s.clients.Create(r.Context(), p.ID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, c)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := s.clients.GetByID(r.Context(), p.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, c)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in clients.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, errors.NewValidationError("Corpo da requisição inválido", err.Error()))
		return
	}

	c, err := s.clients.Update(r.Context(), p.ID, chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, c)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.clients.Delete(r.Context(), p.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
