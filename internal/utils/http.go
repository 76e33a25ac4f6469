// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.CurrentUserResponse{User: user}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes a single JSON document from r's body into dst, rejecting
// trailing data. Unknown fields are ignored.
func ReadJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	if decoder.More() {
		return fmt.Errorf("error decoding JSON body: unexpected trailing data")
	}

	return nil
}
