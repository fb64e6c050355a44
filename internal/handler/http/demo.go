package http

import (
	"net/http"

	"github.com/MKhiriev/iros-gateway/internal/utils"
	"github.com/MKhiriev/iros-gateway/models"
)

// demoMail is the message sent by POST /send-mail.
var demoMail = models.MailMessage{
	Sender:  "test@domain.com",
	From:    "Test ACC <test@domain.com>",
	To:      "example@domain.com",
	Subject: "sample email",
	HTML:    "<div>Hello World</div>",
	Text:    "hello world",
}

// validation checks the body against the rules of [models.ValidationRequest].
func (h *Handler) validation(w http.ResponseWriter, r *http.Request) {
	var req models.ValidationRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ValidResponse{Valid: true}, http.StatusOK)
}

func (h *Handler) authOnly(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) sendMail(w http.ResponseWriter, r *http.Request) {
	body, err := h.services.MailService.Send(r.Context(), demoMail)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusOK)
}
