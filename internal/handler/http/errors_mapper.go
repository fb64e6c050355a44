package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/app"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/service"
	"github.com/MKhiriev/iros-gateway/internal/utils"
	"github.com/MKhiriev/iros-gateway/internal/validators"
	"github.com/MKhiriev/iros-gateway/models"
)

const errorReportLevel = "error"

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order; the first sentinel found in an error's
// chain decides the response.
var errorStatuses = []errorStatus{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrInvalidAPIKey, http.StatusUnauthorized},
	{service.ErrEmptyAuthorization, http.StatusUnauthorized},

	{utils.ErrEmptyBody, http.StatusBadRequest},
	{utils.ErrInvalidAuthorizationValue, http.StatusUnauthorized},

	{adapter.ErrMailRequestFailed, http.StatusBadGateway},
}

// statusFromError returns the status registered for the first matching
// sentinel in [errorStatuses] together with that sentinel's message. Unknown
// errors map to 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, es.err.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError renders err as a JSON {"message", "errors"} body.
//
// Validation failures become 400 with per-field errors. Errors translated
// from a remote service keep their status when public and collapse into a
// generic 500 otherwise. Every 500 is also reported to the mail service.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if validationErrs, ok := validators.AsValidationErrors(err); ok {
		log.Debug().Err(err).Msg("request failed validation")
		utils.WriteJSON(w, models.ErrorResponse{
			Message: app.MsgInvalidDataProvided,
			Errors:  validationErrs.Fields(),
		}, http.StatusBadRequest)
		return
	}

	if httpErr, ok := app.AsHTTPError(err); ok {
		if !httpErr.IsPublic {
			log.Error().Err(err).Msg("remote service failed")
			h.reportError(w, r, err)
			utils.WriteJSON(w, models.ErrorResponse{
				Message: app.MsgInternalServerError,
				Errors:  map[string]string{},
			}, http.StatusInternalServerError)
			return
		}

		log.Warn().Err(err).Msg("remote service rejected request")
		utils.WriteJSON(w, models.ErrorResponse{
			Message: httpErr.Message,
			Errors:  httpErr.Errors,
		}, httpErr.Status)
		return
	}

	status, message := statusFromError(err)
	switch {
	case status == http.StatusInternalServerError:
		log.Error().Err(err).Send()
		h.reportError(w, r, err)
	case status > http.StatusInternalServerError:
		log.Error().Err(err).Send()
	default:
		log.Warn().Err(err).Send()
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Message: message,
		Errors:  map[string]string{},
	}, status)
}

// reportError sends err to the mail service in the background. The report
// outlives the request, and a failure to send it is only logged.
func (h *Handler) reportError(w http.ResponseWriter, r *http.Request, err error) {
	if h.services == nil || h.services.MailService == nil {
		return
	}

	report := models.ErrorReport{
		Message: err.Error(),
		Level:   errorReportLevel,
		Info:    fmt.Sprintf("%s %s trace_id=%s", r.Method, r.URL.Path, w.Header().Get(traceIDHeader)),
	}
	ctx := context.WithoutCancel(r.Context())
	log := logger.FromRequest(r)

	go func() {
		if _, sendErr := h.services.MailService.SendError(ctx, report); sendErr != nil {
			log.Err(sendErr).Msg("failed to report error")
		}
	}()
}
