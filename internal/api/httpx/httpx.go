package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tradesim-dev/tradesim/internal/models"
)

type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, APIError{Error: msg, Code: code})
}

// Fail maps the error taxonomy to a response. Every expected failure is
// a 4xx with a stable code; anything unrecognized is a 500 with the
// detail kept out of the body.
func Fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, models.ErrInvalidShares):
		WriteError(w, http.StatusBadRequest, "invalid_shares", err.Error())
	case errors.Is(err, models.ErrInsufficientFunds):
		WriteError(w, http.StatusBadRequest, "insufficient_funds", err.Error())
	case errors.Is(err, models.ErrInsufficientShares):
		WriteError(w, http.StatusBadRequest, "insufficient_shares", err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, models.ErrUsernameTaken):
		WriteError(w, http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, models.ErrQuoteNotFound):
		WriteError(w, http.StatusNotFound, "quote_not_found", err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
