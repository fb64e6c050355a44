// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every failing field is reported, wrapped with the sentinel error of its
// configuration group so callers can match with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	errs := make([]error, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		errs = append(errs, fmt.Errorf("%w: %s failed on %q",
			groupError(fieldErr.StructNamespace()), fieldErr.StructNamespace(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

func groupError(namespace string) error {
	switch {
	case strings.HasPrefix(namespace, "StructuredConfig.App."):
		return ErrInvalidAppConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Server."):
		return ErrInvalidServerConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.API."):
		return ErrInvalidAPIConfigs
	default:
		return ErrInvalidServiceConfigs
	}
}
