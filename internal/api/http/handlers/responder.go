package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	derr "github.com/ozzus/tours-gateway/internal/domain/errors"
)

type errorResponse struct {
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: true, Status: status, Message: message})
}

// writeErrorFrom mirrors the upstream status when the error carries one.
func writeErrorFrom(w http.ResponseWriter, err error) {
	status, message := classifyError(err)
	writeError(w, status, message)
}

func classifyError(err error) (int, string) {
	var upErr *derr.UpstreamError
	switch {
	case errors.As(err, &upErr):
		return upErr.HTTPStatus(), upErr.Message
	case errors.Is(err, derr.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
