// Package respond writes the uniform {success, message?, ...} JSON envelope
// every endpoint answers with, error paths included.
package respond

import (
	"encoding/json"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

func ValidationErrors(w http.ResponseWriter, errs []FieldError) {
	JSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": "Validation errors",
		"errors":  errs,
	})
}
