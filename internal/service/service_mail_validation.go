package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/iros-gateway/internal/validators"
	"github.com/MKhiriev/iros-gateway/models"
)

// MailValidationService rejects malformed messages before they reach the
// mail service.
type MailValidationService struct {
	inner     MailService
	validator validators.Validator
}

func NewMailValidationService(validator validators.Validator) MailServiceWrapper {
	return &MailValidationService{validator: validator}
}

func (v *MailValidationService) Send(ctx context.Context, msg models.MailMessage) (json.RawMessage, error) {
	if err := v.validator.Validate(ctx, msg); err != nil {
		return nil, fmt.Errorf("error during mail message validation before sending: %w", err)
	}

	return v.inner.Send(ctx, msg)
}

func (v *MailValidationService) SendError(ctx context.Context, report models.ErrorReport) (json.RawMessage, error) {
	return v.inner.SendError(ctx, report)
}

func (v *MailValidationService) Wrap(wrapped MailService) MailService {
	v.inner = wrapped
	return v
}
