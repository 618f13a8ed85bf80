package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-library-api/models"
)

// decodeJSON reads the request body into v. An empty body leaves v
// untouched so that validation reports the missing fields. A malformed
// date is returned as is, anything else as ErrInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, models.ErrInvalidDate):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}
