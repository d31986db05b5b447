// Package api exposes the HTTP surface: the public briefing endpoints and
// the authenticated /v1 API.
package api

import (
	"encoding/json"
	"net/http"

	"bcstudio-server/internal/common/errors"
)

type successEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successEnvelope{Data: data})
}

// writeError maps a StandardError to its HTTP status. Anything that is not
// a StandardError becomes a 500 with a generic message; internals never
// leak to the wire.
func writeError(w http.ResponseWriter, err error) {
	stdErr, ok := errors.AsStandardError(err)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: errorBody{
			Code:    string(errors.ErrCodeInternal),
			Message: "Internal server error",
		}})
		return
	}

	writeJSON(w, statusForCode(stdErr.Code), errorEnvelope{Error: errorBody{
		Code:    string(stdErr.Code),
		Message: stdErr.Message,
		Details: stdErr.Details,
	}})
}

func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodePlanRequired:
		return http.StatusForbidden
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAlreadySubmitted:
		return http.StatusConflict
	case errors.ErrCodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
