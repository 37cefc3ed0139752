package handlers

import (
	"encoding/json"
	"net/http"
)

// WriteError writes a standardised JSON error response. code is a stable
// machine-readable identifier, msg is for humans.
func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, map[string]string{
		"error": msg,
		"code":  code,
	})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
