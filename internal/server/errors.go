package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/melissa/career-advisor/internal/market"
	"github.com/melissa/career-advisor/internal/types"
)

// errorResponse is the JSON body for every non-2xx response
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps domain error kinds onto HTTP status codes. Invalid input
// is the caller's fault, insufficient data is a semantically valid request
// the server cannot fulfil, everything else is internal.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *types.InvalidInputError
	if errors.As(err, &invalid) {
		s.logRequestError(r, http.StatusBadRequest, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Message, Field: invalid.Field})
		return
	}

	var insufficient *market.InsufficientDataError
	if errors.As(err, &insufficient) {
		s.logRequestError(r, http.StatusUnprocessableEntity, err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	s.logRequestError(r, http.StatusInternalServerError, err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
