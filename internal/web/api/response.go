package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afuentes/centinela/internal/gemini"
)

// ErrorResponse is the standard error JSON body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSON encodes data as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: status})
}

// writeGatewayError maps a gateway error kind to an HTTP status.
func writeGatewayError(w http.ResponseWriter, err error) {
	var gerr *gemini.Error
	if errors.As(err, &gerr) {
		switch gerr.Kind {
		case gemini.KindMissingCredential:
			writeError(w, http.StatusUnprocessableEntity, gerr.Error())
		case gemini.KindTransient:
			writeError(w, http.StatusServiceUnavailable, gerr.Error())
		default:
			writeError(w, http.StatusBadGateway, gerr.Error())
		}
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
