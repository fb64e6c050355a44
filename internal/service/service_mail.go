package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/models"
)

type mailService struct {
	mail adapter.MailAdapter

	logger *logger.Logger
}

func NewMailService(mail adapter.MailAdapter, logger *logger.Logger) MailService {
	return &mailService{mail: mail, logger: logger}
}

func (s *mailService) Send(ctx context.Context, msg models.MailMessage) (json.RawMessage, error) {
	body, err := s.mail.Send(ctx, msg)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail sent")
	return body, nil
}

func (s *mailService) SendError(ctx context.Context, report models.ErrorReport) (json.RawMessage, error) {
	return s.mail.SendError(ctx, report.Message, report.Level, report.Info)
}
