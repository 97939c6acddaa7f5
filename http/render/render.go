// Package render writes JSON responses.
package render

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SendJSON writes obj encoded as JSON with the given status.
func SendJSON(w http.ResponseWriter, status int, obj interface{}) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("error encoding json response: %v: %w", obj, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}

// MaxBodyBytes is the largest request body DecodeJSON reads.
const MaxBodyBytes int64 = 1 << 20

// DecodeJSON decodes the request body into obj, unknown fields are rejected.
// Bodies larger than MaxBodyBytes fail with a *http.MaxBytesError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, obj interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(obj); err != nil {
		return fmt.Errorf("decode json request: %w", err)
	}

	return nil
}
