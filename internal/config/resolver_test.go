package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEnv() map[string]string {
	return map[string]string{
		"LOOKUP_URL":  "http://lookup",
		"LOOKUP_KEY":  "lookup-key",
		"MAIL_URL":    "http://mail",
		"MAIL_KEY":    "mail-key",
		"OGI_URL":     "http://ogi",
		"OGI_KEY":     "ogi-key",
		"TEXT_URL":    "http://text",
		"TEXT_KEY":    "text-key",
		"TINYURL_URL": "http://tinyurl",
		"TINYURL_KEY": "tinyurl-key",
		"USER_URL":    "http://user",
		"USER_KEY":    "user-key",
		"API_URL":     "http://api",
		"API_KEY":     "api-key",
		"BILLING_URL": "http://billing",
		"BILLING_KEY": "billing-key",
	}
}

func TestResolveService_KnownServices(t *testing.T) {
	env := fullEnv()

	for _, service := range []string{ServiceLookup, ServiceMail, ServiceOGI, ServiceText, ServiceTinyURL, ServiceUser} {
		t.Run(service, func(t *testing.T) {
			got := ResolveService(service, env)
			assert.Equal(t, env[serviceURLVar(service)], got.URL)
			assert.Equal(t, env[serviceKeyVar(service)], got.Key)
		})
	}
}

// TestResolveService_API verifies that the api entry only resolves its key,
// even when API_URL is present.
func TestResolveService_API(t *testing.T) {
	got := ResolveService(ServiceAPI, fullEnv())

	assert.Empty(t, got.URL)
	assert.Equal(t, "api-key", got.Key)
}

func TestResolveService_UnknownServiceIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		service string
		env     map[string]string
	}{
		{name: "unknown with matching env", service: "billing", env: fullEnv()},
		{name: "unknown with empty env", service: "billing", env: map[string]string{}},
		{name: "unknown with nil env", service: "payments", env: nil},
		{name: "upper-case name is not known", service: "MAIL", env: fullEnv()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveService(tt.service, tt.env)
			assert.True(t, got.IsZero())
		})
	}
}

func TestResolveService_MissingVariables(t *testing.T) {
	got := ResolveService(ServiceMail, map[string]string{"MAIL_URL": "http://mail"})

	assert.Equal(t, "http://mail", got.URL)
	assert.Empty(t, got.Key)
}

func TestServiceSchema_IsCopy(t *testing.T) {
	schema := ServiceSchema()
	require.Contains(t, schema, ServiceMail)
	assert.Equal(t, []string{"MAIL_URL", "MAIL_KEY"}, schema[ServiceMail])
	assert.Equal(t, []string{"API_KEY"}, schema[ServiceAPI])

	schema[ServiceMail][0] = "CHANGED"
	assert.Equal(t, "MAIL_URL", ServiceSchema()[ServiceMail][0])
}

func TestValidateServiceEnv(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		assert.NoError(t, ValidateServiceEnv(ServiceUser, fullEnv()))
	})

	t.Run("missing key", func(t *testing.T) {
		err := ValidateServiceEnv(ServiceUser, map[string]string{"USER_URL": "http://user"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingServiceVariable)
		assert.Contains(t, err.Error(), "USER_KEY")
		assert.NotContains(t, err.Error(), "USER_URL")
	})

	t.Run("unknown service", func(t *testing.T) {
		err := ValidateServiceEnv("billing", fullEnv())
		assert.ErrorIs(t, err, ErrUnknownService)
	})
}
