package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/iros-gateway/internal/utils"
)

// decodeAndValidate decodes the JSON body of r into dst and validates it.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return h.validator.Validate(r.Context(), dst)
}

// writeRaw writes a JSON body received from a remote service. An empty body
// is written as {}.
func writeRaw(w http.ResponseWriter, body json.RawMessage, status int) {
	if len(body) == 0 {
		body = json.RawMessage(`{}`)
	}
	utils.WriteJSON(w, body, status)
}
