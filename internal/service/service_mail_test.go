package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/iros-gateway/internal/adapter"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/mock"
	"github.com/MKhiriev/iros-gateway/internal/validators"
	"github.com/MKhiriev/iros-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMailService(t *testing.T) (MailService, *mock.MockMailAdapter) {
	t.Helper()
	mail := mock.NewMockMailAdapter(gomock.NewController(t))
	svc := NewMailValidationService(validators.NewStructValidator()).Wrap(NewMailService(mail, logger.Nop()))
	return svc, mail
}

func validMail() models.MailMessage {
	return models.MailMessage{
		Sender:  "test@domain.com",
		From:    "Test ACC <test@domain.com>",
		To:      "example@domain.com",
		Subject: "sample email",
		HTML:    "<div>Hello World</div>",
		Text:    "hello world",
	}
}

func TestMailService_Send(t *testing.T) {
	svc, mail := newTestMailService(t)
	mail.EXPECT().Send(gomock.Any(), validMail()).Return(json.RawMessage(`{"queued":true}`), nil)

	body, err := svc.Send(context.Background(), validMail())

	require.NoError(t, err)
	assert.JSONEq(t, `{"queued":true}`, string(body))
}

// TestMailService_Send_InvalidMessage verifies that an invalid message never
// reaches the mail service.
func TestMailService_Send_InvalidMessage(t *testing.T) {
	svc, _ := newTestMailService(t)
	msg := validMail()
	msg.To = "not-an-email"

	_, err := svc.Send(context.Background(), msg)

	require.ErrorIs(t, err, validators.ErrValidationFailed)
	validationErrs, ok := validators.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, validationErrs.Fields(), "to")
}

func TestMailService_Send_AdapterFailure(t *testing.T) {
	svc, mail := newTestMailService(t)
	mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrMailRequestFailed)

	_, err := svc.Send(context.Background(), validMail())

	assert.ErrorIs(t, err, adapter.ErrMailRequestFailed)
	assert.Equal(t, "Failed to request Mail Service", err.Error())
}

func TestMailService_SendError(t *testing.T) {
	svc, mail := newTestMailService(t)
	mail.EXPECT().SendError(gomock.Any(), "disk full", "", "node-3").Return(nil, nil)

	_, err := svc.SendError(context.Background(), models.ErrorReport{Message: "disk full", Info: "node-3"})

	require.NoError(t, err)
}
