package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/sensitivv/internal/common"
)

const maxBodyBytes = 1 << 20

const (
	msgCredentialsRequired = "Email and password are required"
	msgInvalidBody         = "Invalid request body"
	msgEmailRegistered     = "Email already registered"
	msgAuthFailed          = "Authentication failed"
	msgUnauthorized        = "Unauthorized"
	msgInvalidToken        = "Invalid token"
	msgUserNotFound        = "User not found"
	msgRegisterFailed      = "Server error during registration"
	msgLoginFailed         = "Server error during login"
	msgServerError         = "Server error"
	msgFoodItemsFailed     = "Error fetching food items"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps a service error to its HTTP status and public message.
// Anything unrecognised is a 500 with fallback as the message.
func statusFor(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, msgCredentialsRequired
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, msgEmailRegistered
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, msgAuthFailed
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, msgInvalidToken
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, msgUserNotFound
	default:
		return http.StatusInternalServerError, fallback
	}
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeBody reads a single JSON object into v. An empty body leaves v
// untouched, so missing fields surface as validation errors rather than parse
// errors. Anything after the object other than whitespace is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
