package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ParseJSON decodes JSON from the request body into the given destination.
// It limits the request body size to prevent abuse and provides clear error messages.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	// Limit request body to 2MB; document models are small and the
	// compiled output is never posted back
	r.Body = http.MaxBytesReader(w, r.Body, 2<<20)

	decoder := json.NewDecoder(r.Body)
	// DisallowUnknownFields() is intentionally NOT used: the document
	// model evolves and older servers must tolerate newer editor
	// payloads. Validation is performed downstream.

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
