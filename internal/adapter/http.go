package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/iros-gateway/internal/config"
	"github.com/MKhiriev/iros-gateway/internal/utils"
)

// newServiceClient validates cred and returns an HTTP client bound to its
// URL.
func newServiceClient(cred config.ServiceCredential, timeout time.Duration) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(cred.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServiceURL, err)
	}
	if strings.TrimSpace(cred.Key) == "" {
		return nil, ErrEmptyServiceKey
	}

	return utils.NewHTTPClient(baseURL, timeout), nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
