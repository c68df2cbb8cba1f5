// Package apijson holds the small request/response helpers shared by the
// JSON API handlers: body decoding with a size cap, response encoding, and
// the common success/error payload shapes.
package apijson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; every payload this API accepts is a
// small form submission.
const maxBodyBytes = 1 << 20

// Confirmation is the standard success/failure envelope. The optional ID
// fields carry the generated identifier under the route-specific key.
type Confirmation struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registration_id,omitempty"`
	EventID        string `json:"event_id,omitempty"`
	PhotoID        string `json:"photo_id,omitempty"`
}

// ValidationFailure is the 422 payload: a short message plus one entry per
// offending field.
type ValidationFailure struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Decode reads the request body into dst, rejecting bodies over the size
// cap and trailing garbage after the JSON value.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// Write encodes v as the JSON response with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// BadRequest reports an unreadable or malformed request body.
func BadRequest(w http.ResponseWriter) {
	Write(w, http.StatusBadRequest, Confirmation{Success: false, Message: "Requête invalide"})
}

// Invalid reports field-level validation failures. Nothing has been
// persisted when this is sent.
func Invalid(w http.ResponseWriter, fields map[string]string) {
	Write(w, http.StatusUnprocessableEntity, ValidationFailure{
		Success: false,
		Message: "Certains champs sont invalides",
		Errors:  fields,
	})
}

// Internal reports a store failure with a generic message; details stay in
// the server log.
func Internal(w http.ResponseWriter, message string) {
	Write(w, http.StatusInternalServerError, Confirmation{Success: false, Message: message})
}
