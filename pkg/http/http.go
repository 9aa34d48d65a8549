// Package http contains utility functions for request and response handling.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type ErrorCode int

const (
	ErrorCodeInvalidRequestBody ErrorCode = 1
	ErrorCodeInvalidArgument              = 2
	ErrorCodeFailedToTrack                = 3
	ErrorCodeUnauthorized                 = 4
)

type errorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// JsonError writes an Error to the ResponseWriter with the provided information.
func JsonError(w http.ResponseWriter, responseCode int, code ErrorCode, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(responseCode)

	err := json.NewEncoder(w).Encode(errorResponse{Code: code, Message: msg})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode error response")
	}
}

// JsonEncode marshals an interface and writes it to the response.
func JsonEncode(w http.ResponseWriter, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// JsonSuccess writes a success message to the response.
func JsonSuccess(w http.ResponseWriter) {
	err := JsonEncode(w, map[string]bool{"success": true})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode success response")
	}
}
