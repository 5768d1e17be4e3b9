package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/validate"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/repository"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/services"
)

type APIError struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

// WriteServiceError maps the application error taxonomy onto HTTP statuses:
// validation 400, bad credentials 401, forbidden 403, unknown id 404,
// duplicate username 409, everything else 500.
func WriteServiceError(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		WriteError(w, http.StatusBadRequest, "validation", "validation failed", verrs)
	case errors.Is(err, services.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
	case errors.Is(err, services.ErrForbidden):
		WriteError(w, http.StatusForbidden, "forbidden", "not allowed", nil)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, repository.ErrUsernameTaken):
		WriteError(w, http.StatusConflict, "conflict", "username already taken", nil)
	default:
		slog.Error("request failed", "err", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
