package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ubuntucrafts/catalog/pkg/models"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message, details string) {
	writeJSON(w, code, models.ErrorResponse{Error: message, Details: details})
}
