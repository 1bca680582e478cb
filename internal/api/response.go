package api

import (
	"encoding/json"
	"net/http"
	"time"

	"fleetops/fleetdeck/internal/models/dtos/responses"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// fieldErrorBody is the inline-validation payload: one message per field.
type fieldErrorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func respondWithFieldErrors(w http.ResponseWriter, message string, fields map[string]string) {
	body := fieldErrorBody{Message: message, Fields: fields}
	resp := responses.APIResponse[fieldErrorBody]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
		Data:      &body,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)

	_ = json.NewEncoder(w).Encode(resp)
}
