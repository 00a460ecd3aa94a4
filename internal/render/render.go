// Package render writes JSON responses.
package render

import (
	"encoding/json"
	"net/http"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, code int, msg string) error {
	return JSON(w, code, ErrorBody{Error: msg})
}
