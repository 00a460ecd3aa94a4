package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/am-saksham/rescue-api/pkg/e"
)

const maxBodyBytes = 1 << 20

// DecodeJSON strictly decodes a single JSON object from the request body into
// dst. Unknown fields and trailing data are rejected with e.ErrInvalidInput.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	const op = "middleware.DecodeJSON"

	if r.Body == nil {
		return fmt.Errorf("%s: %w: empty body", op, e.ErrInvalidInput)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w: empty body", op, e.ErrInvalidInput)
		}
		return fmt.Errorf("%s: %w: invalid JSON", op, e.ErrInvalidInput)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%s: %w: invalid JSON", op, e.ErrInvalidInput)
	}
	return nil
}
