package api

import (
	"encoding/json"
	"net/http"
)

/*
JSON helpers for the /api handlers. Every error body carries at least
an "error" field so clients can always read one shape.
*/

func WriteJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJson(w, status, map[string]string{
		"error": message,
	})
}

func WriteErrorDetail(w http.ResponseWriter, status int, errorMessage, detail string) {
	WriteJson(w, status, map[string]string{
		"error":   errorMessage,
		"message": detail,
	})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
