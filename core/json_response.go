package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the standard response envelope.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Meta  any          `json:"meta,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries error information in the response envelope.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// JSON writes v wrapped in the standard envelope with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(JSONResponse{Data: v})
}

// Error writes err as a JSON error envelope. HTTPError values map to
// their own status code and key; anything else becomes a 500 with a
// generic message so internal details never leak to clients.
func Error(w http.ResponseWriter, err error) {
	var verr ValidationError
	if errors.As(err, &verr) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(JSONResponse{
			Error: &ErrorDetail{
				Code:    ErrUnprocessableEntity.Key,
				Message: "validation failed",
				Fields:  map[string][]string(verr),
			},
		})
		return
	}

	httpErr := ErrInternalServerError
	var known HTTPError
	if errors.As(err, &known) {
		httpErr = known
	}

	if httpErr.Code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	detail := httpErr.Detail
	if detail == "" && httpErr.Code < http.StatusInternalServerError {
		detail = http.StatusText(httpErr.Code)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(JSONResponse{
		Error: &ErrorDetail{Code: httpErr.Key, Message: detail},
	})
}
