package adapter

import (
	"errors"

	"github.com/MKhiriev/iros-gateway/internal/app"
)

var (
	// ErrMailRequestFailed is returned by every failed mail service call.
	// The original cause is logged and discarded.
	ErrMailRequestFailed = errors.New(app.MsgFailedToRequestMailService)

	// ErrInvalidServiceURL is returned by constructors when the credential
	// URL is empty or malformed.
	ErrInvalidServiceURL = errors.New("invalid service url")

	// ErrEmptyServiceKey is returned by constructors when the credential key
	// is empty.
	ErrEmptyServiceKey = errors.New("empty service key")
)
