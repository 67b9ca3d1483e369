package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/starford/globalmenu/internal/apperr"
)

const maxBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// writeError maps service errors to HTTP statuses. Client errors carry the
// error text; anything else is logged and reported as an internal error.
func writeError(w http.ResponseWriter, op string, err error) {
	var status int
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrProtected):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrAlreadyExists):
		status = http.StatusConflict
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, status, errorBody(err.Error()))
}

// readBody reads a size-limited request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return bytes.TrimSpace(body), nil
}

// decodeJSON decodes the request body into v. An empty body leaves v
// untouched and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) (bool, error) {
	body, err := readBody(w, r)
	if err != nil {
		return false, err
	}
	if len(body) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("invalid JSON body: %w", err)
	}
	return true, nil
}

// decodeRequired decodes a mandatory body and validates it when v
// implements Validate.
func decodeRequired(w http.ResponseWriter, r *http.Request, v any) bool {
	ok, err := decodeJSON(w, r, v)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return false
	}
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("request body is required"))
		return false
	}
	if val, isVal := v.(interface{ Validate() error }); isVal {
		if err := val.Validate(); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
			return false
		}
	}
	return true
}
