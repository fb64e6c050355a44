package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/internal/utils"
	"github.com/MKhiriev/iros-gateway/models"
)

const defaultErrorLevel = "error"

type httpMailAdapter struct {
	client *utils.HTTPClient
	key    string

	logger *logger.Logger
}

// NewHTTPMailAdapter constructs the REST implementation of [MailAdapter].
// Every request is authorized with "Bearer <cred.Key>". timeout bounds each
// call; zero keeps the transport default.
//
// Returns an error if cred.URL cannot be parsed or cred.Key is empty.
func NewHTTPMailAdapter(cred config.ServiceCredential, timeout time.Duration, log *logger.Logger) (MailAdapter, error) {
	client, err := newServiceClient(cred, timeout)
	if err != nil {
		return nil, fmt.Errorf("mail adapter: %w", err)
	}

	return &httpMailAdapter{
		client: client,
		key:    cred.Key,
		logger: log.ForService(config.ServiceMail),
	}, nil
}

// Send implements [MailAdapter].
func (m *httpMailAdapter) Send(ctx context.Context, msg models.MailMessage) (json.RawMessage, error) {
	return m.post(ctx, "mail", msg)
}

// SendError implements [MailAdapter].
func (m *httpMailAdapter) SendError(ctx context.Context, message, level, info string) (json.RawMessage, error) {
	if level == "" {
		level = defaultErrorLevel
	}

	return m.post(ctx, "error", models.ErrorReport{Message: message, Level: level, Info: info})
}

// post sends data to {url}/{path}. Any failure is logged and replaced by
// ErrMailRequestFailed.
func (m *httpMailAdapter) post(ctx context.Context, path string, data any) (json.RawMessage, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+m.key).
		SetBody(data).
		Post("/" + path)
	if err != nil {
		m.logger.Err(err).Str("path", path).Msg("mail service request failed")
		return nil, ErrMailRequestFailed
	}
	if !resp.IsSuccess() {
		m.logger.Error().
			Str("path", path).
			Int("status", resp.StatusCode()).
			Bytes("body", resp.Body()).
			Msg("mail service rejected request")
		return nil, ErrMailRequestFailed
	}

	return rawBody(resp.Body()), nil
}

// rawBody copies body so it stays valid after the response is released.
// An empty body becomes nil.
func rawBody(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	return append(json.RawMessage(nil), body...)
}
