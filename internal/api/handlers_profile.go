package api

import (
	"encoding/json"
	"net/http"

	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/profile"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := s.profiles.Get(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, view)
}

func (s *Server) handleUpsertWdProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in profile.WdInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, errors.NewValidationError("Corpo da requisição inválido", err.Error()))
		return
	}

	wd, err := s.profiles.UpsertWd(r.Context(), p.ID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, wd)
}
