package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Names of the remote services known to the resolver.
const (
	ServiceAPI     = "api"
	ServiceLookup  = "lookup"
	ServiceMail    = "mail"
	ServiceOGI     = "ogi"
	ServiceText    = "text"
	ServiceTinyURL = "tinyurl"
	ServiceUser    = "user"
)

// serviceSchema lists, per known service, the environment variables that
// service requires. Regular services need both <SERVICE>_URL and
// <SERVICE>_KEY; the api entry only needs API_KEY.
var serviceSchema = func() map[string][]string {
	schema := map[string][]string{
		ServiceAPI: {serviceKeyVar(ServiceAPI)},
	}
	for _, s := range []string{ServiceLookup, ServiceMail, ServiceOGI, ServiceText, ServiceTinyURL, ServiceUser} {
		schema[s] = []string{serviceURLVar(s), serviceKeyVar(s)}
	}
	return schema
}()

var varValidator = validator.New()

func serviceURLVar(service string) string {
	return strings.ToUpper(service) + "_URL"
}

func serviceKeyVar(service string) string {
	return strings.ToUpper(service) + "_KEY"
}

// ServiceSchema returns a copy of the known service schema: service name to
// the environment variables it requires.
func ServiceSchema() map[string][]string {
	out := make(map[string][]string, len(serviceSchema))
	for service, vars := range serviceSchema {
		out[service] = append([]string(nil), vars...)
	}
	return out
}

// ResolveService derives the credential of serviceName from envVars by
// looking up <SERVICE>_URL and <SERVICE>_KEY.
//
// A field is populated only when its variable belongs to the schema of a
// known service. Unknown services resolve to the zero credential; the lookup
// never fails, so callers must check for missing fields themselves.
func ResolveService(serviceName string, envVars map[string]string) ServiceCredential {
	vars, ok := serviceSchema[serviceName]
	if !ok {
		return ServiceCredential{}
	}

	var out ServiceCredential
	for _, v := range vars {
		switch v {
		case serviceURLVar(serviceName):
			out.URL = envVars[v]
		case serviceKeyVar(serviceName):
			out.Key = envVars[v]
		}
	}

	return out
}

// ValidateServiceEnv reports every required variable of serviceName that is
// missing or empty in envVars. Unknown services yield ErrUnknownService.
func ValidateServiceEnv(serviceName string, envVars map[string]string) error {
	vars, ok := serviceSchema[serviceName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownService, serviceName)
	}

	var errs []error
	for _, v := range vars {
		if err := varValidator.Var(envVars[v], "required"); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingServiceVariable, v))
		}
	}

	return errors.Join(errs...)
}

// environ returns the process environment as a map.
func environ() map[string]string {
	return env.ToMap(os.Environ())
}
