package models

import "time"

// AppSettings announces an application and its sections to the user service.
// It is sent once at startup so the user service can scope roles to them.
type AppSettings struct {
	App      string   `json:"app"`
	Sections []string `json:"sections"`
}

// RegistrationState describes the outcome of the startup registration of
// the application on the user service.
type RegistrationState string

const (
	// RegistrationPending means the registration call has not finished yet.
	RegistrationPending RegistrationState = "pending"
	// RegistrationSucceeded means the user service accepted the app settings.
	RegistrationSucceeded RegistrationState = "registered"
	// RegistrationFailed means the call failed; the application keeps running
	// in a degraded state.
	RegistrationFailed RegistrationState = "failed"
)

// RegistrationStatus is a snapshot of the startup registration outcome.
type RegistrationStatus struct {
	State     RegistrationState `json:"state"`
	Error     string            `json:"error,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Degraded reports whether the registration failed.
func (s RegistrationStatus) Degraded() bool {
	return s.State == RegistrationFailed
}

// AppInfo is the body of GET /health.
type AppInfo struct {
	App          string             `json:"app"`
	Version      string             `json:"version"`
	Status       string             `json:"status"`
	Registration RegistrationStatus `json:"registration"`
}
