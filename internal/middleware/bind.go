package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"vibescore/pkg/e"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object into target. Unknown fields and
// trailing data are rejected with e.ErrInvalidInput.
func DecodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body: %w", e.ErrInvalidInput)
		}
		return fmt.Errorf("invalid JSON: %v: %w", err, e.ErrInvalidInput)
	}

	// reject trailing data after the first JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid JSON: trailing data: %w", e.ErrInvalidInput)
	}
	return nil
}
