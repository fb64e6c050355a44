package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/iros-gateway/internal/app"
	"github.com/go-resty/resty/v2"
)

// userServiceError is the error body returned by the user service.
type userServiceError struct {
	Message string         `json:"message"`
	Errors  map[string]any `json:"errors"`
}

// mapUserServiceError translates a failed user service call into an
// *app.HTTPError. resp is nil when the call never got a response.
//
// The message and field errors come from the response body when present.
// Everything except a 500 is public. A missing status becomes 500.
func mapUserServiceError(resp *resty.Response) *app.HTTPError {
	var (
		status int
		body   userServiceError
	)

	if resp != nil {
		status = resp.StatusCode()
		// non-JSON bodies leave the defaults in place
		_ = json.Unmarshal(resp.Body(), &body)
	}

	message := body.Message
	if message == "" {
		message = app.MsgFailedToRequestUserService
	}

	return app.NewHTTPError(
		message,
		status != http.StatusInternalServerError,
		stringifyFieldErrors(body.Errors),
		status,
	)
}

func stringifyFieldErrors(errs map[string]any) map[string]string {
	fieldErrs := make(map[string]string, len(errs))
	for field, value := range errs {
		switch v := value.(type) {
		case string:
			fieldErrs[field] = v
		case nil:
			fieldErrs[field] = ""
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				encoded = []byte(fmt.Sprint(v))
			}
			fieldErrs[field] = string(encoded)
		}
	}
	return fieldErrs
}
