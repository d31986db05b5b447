package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bcstudio-server/internal/briefing"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/validation"
)

// submitSchema guards the public submission payload before it reaches the
// service. Everything inside responses is free-form.
var submitSchema = validation.ObjectSchema(
	[]string{"responses"},
	map[string]interface{}{
		"responses": map[string]interface{}{
			"type":                 "object",
			"minProperties":        1,
			"additionalProperties": map[string]interface{}{"type": "string"},
		},
	},
)

// handlePublicBriefing serves the unauthenticated form view to the end
// client.
func (s *Server) handlePublicBriefing(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	view, err := s.briefings.PublicByToken(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, view)
}

// handleSubmitBriefing accepts the end client's answers. On success the
// owner is notified best effort.
func (s *Server) handleSubmitBriefing(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, errors.NewValidationError("Corpo da requisição inválido", err.Error()))
		return
	}

	result, err := validation.ValidateInput(payload, submitSchema)
	if err != nil {
		writeError(w, errors.NewInternalError(err))
		return
	}
	if !result.Valid {
		writeError(w, errors.NewValidationError("Respostas inválidas", strings.Join(result.GetErrorMessages(), "; ")))
		return
	}

	responses := map[string]string{}
	if raw, ok := payload["responses"].(map[string]interface{}); ok {
		for k, v := range raw {
			if str, ok := v.(string); ok {
				responses[k] = str
			}
		}
	}

	form, err := s.briefings.Submit(r.Context(), token, responses)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.notifier != nil && s.profiles != nil {
		if email, phone, err := s.profiles.ContactByID(r.Context(), form.OwnerID); err == nil {
			s.notifier.NotifySubmission(r.Context(), email, phone, form.Title)
		}
	}

	writeSuccess(w, http.StatusOK, map[string]bool{"submitted": true})
}

func (s *Server) handleListBriefings(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	forms, err := s.briefings.ListByOwner(r.Context(), p.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, forms)
}

// handleCreateBriefing creates a briefing and, when the owner attached a
// client with an email, mails the public link.
func (s *Server) handleCreateBriefing(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in briefing.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, errors.NewValidationError("Corpo da requisição inválido", err.Error()))
		return
	}

	form, err := s.briefings.Create(r.Context(), p.ID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.notifier != nil && s.clients != nil && form.ClientID != nil {
		if client, err := s.clients.GetByID(r.Context(), p.ID, *form.ClientID); err == nil && client.Email != "" {
			link := s.cfg.Server.PublicBaseURL + "/briefing/" + form.Token
			s.notifier.SendBriefingLink(r.Context(), client.Email, client.Name, link)
		}
	}

	writeSuccess(w, http.StatusCreated, form)
}

func (s *Server) handleGetBriefing(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	form, err := s.briefings.GetByID(r.Context(), p.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, form)
}

func (s *Server) handleDeleteBriefing(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.briefings.Delete(r.Context(), p.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleBriefingPrompt(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	prompt, err := s.briefings.Prompt(r.Context(), p.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"prompt": prompt})
}
