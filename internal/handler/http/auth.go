package http

import (
	"net/http"

	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("email", req.Email).Msg("user logged in")
	writeRaw(w, body, http.StatusOK)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := h.services.AuthService.RequestPasswordReset(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordReset
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := h.services.AuthService.ResetPassword(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusOK)
}
