package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/logger"
	"github.com/MKhiriev/iros-gateway/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMailAdapter creates a mail adapter pointed at serverURL.
func newTestMailAdapter(t *testing.T, serverURL string, log *logger.Logger) MailAdapter {
	t.Helper()
	if log == nil {
		log = logger.Nop()
	}

	a, err := NewHTTPMailAdapter(config.ServiceCredential{URL: serverURL, Key: "mail-key"}, 0, log)
	require.NoError(t, err)
	return a
}

func testMessage() models.MailMessage {
	return models.MailMessage{
		Sender:  "noreply@example.com",
		From:    "Example",
		To:      "jane@example.com",
		Subject: "Hello",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPMailAdapter_InvalidCredential(t *testing.T) {
	_, err := NewHTTPMailAdapter(config.ServiceCredential{}, 0, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidServiceURL)
}

// ── Send ────────────────────────────────────────────────────────────────────

func TestMailSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mail", r.URL.Path)
		assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))

		var got models.MailMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, testMessage(), got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m-1"}`))
	}))
	defer srv.Close()

	a := newTestMailAdapter(t, srv.URL, nil)
	body, err := a.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m-1"}`, string(body))
}

func TestMailSend_RemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad key"}`))
	}))
	defer srv.Close()

	a := newTestMailAdapter(t, srv.URL, nil)
	body, err := a.Send(context.Background(), testMessage())

	assert.Nil(t, body)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMailRequestFailed)
	assert.Equal(t, "Failed to request Mail Service", err.Error())
}

// TestMailSend_TransportFailure verifies that a connection error is logged
// and never returned to the caller.
func TestMailSend_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	a := newTestMailAdapter(t, url, log)
	_, err := a.Send(context.Background(), testMessage())

	require.Error(t, err)
	assert.Equal(t, "Failed to request Mail Service", err.Error())
	assert.Contains(t, buf.String(), "mail service request failed")
	assert.Contains(t, buf.String(), `"service":"mail"`)
}

func TestMailSend_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestMailAdapter(t, srv.URL, nil)
	_, err := a.Send(ctx, testMessage())

	assert.ErrorIs(t, err, ErrMailRequestFailed)
}

// ── SendError ───────────────────────────────────────────────────────────────

func TestMailSendError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		level   string
		info    string
		want    models.ErrorReport
	}{
		{
			name:    "defaults",
			message: "disk full",
			want:    models.ErrorReport{Message: "disk full", Level: "error", Info: ""},
		},
		{
			name:    "explicit level and info",
			message: "slow query",
			level:   "warning",
			info:    "users table",
			want:    models.ErrorReport{Message: "slow query", Level: "warning", Info: "users table"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/error", r.URL.Path)
				assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))

				var got models.ErrorReport
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, tt.want, got)
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			a := newTestMailAdapter(t, srv.URL, nil)
			body, err := a.SendError(context.Background(), tt.message, tt.level, tt.info)

			require.NoError(t, err)
			assert.Nil(t, body)
		})
	}
}

func TestMailSendError_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestMailAdapter(t, srv.URL, nil)
	_, err := a.SendError(context.Background(), "boom", "", "")

	assert.ErrorIs(t, err, ErrMailRequestFailed)
}

// TestNewHTTPMailAdapter_BasePath verifies that a URL with a path prefix is
// kept in front of the endpoint.
func TestNewHTTPMailAdapter_BasePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/mail", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestMailAdapter(t, srv.URL+"/v1/", nil)
	_, err := a.Send(context.Background(), testMessage())
	require.NoError(t, err)
}
