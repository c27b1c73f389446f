package api

import (
	"encoding/json"
	"net/http"
)

// ResponseType tells which field of a Response carries the payload.
type ResponseType string

const (
	ResponseTypeObject ResponseType = "object"
	ResponseTypeArray  ResponseType = "array"
)

// Response is the envelope of every successful response.
type Response struct {
	ResponseType ResponseType `json:"response_type"`
	Object       any          `json:"object,omitempty"`
	Array        any          `json:"array,omitempty"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeObject(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusOK, Response{ResponseType: ResponseTypeObject, Object: body})
}

// writeArray always emits an array, even for a nil slice.
func writeArray[T any](w http.ResponseWriter, body []T) {
	if body == nil {
		body = []T{}
	}

	writeJSON(w, http.StatusOK, Response{ResponseType: ResponseTypeArray, Array: body})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
