package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/MKhiriev/iros-gateway/internal/app"
	"github.com/MKhiriev/iros-gateway/models"
	"github.com/go-playground/validator/v10"
)

const (
	tagBeforeNow = "before_now"
	tagAfterNow  = "after_now"
)

// StructValidator validates structs using their `validate` tags. Field
// names in reported errors are the JSON names, dotted for nested fields
// (e.g. "obj.int").
type StructValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewStructValidator returns a StructValidator using the wall clock for
// date rules.
func NewStructValidator() *StructValidator {
	return NewStructValidatorWithClock(time.Now)
}

// NewStructValidatorWithClock returns a StructValidator whose date rules
// compare against now().
func NewStructValidatorWithClock(now func() time.Time) *StructValidator {
	v := &StructValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	v.validate.RegisterTagNameFunc(jsonFieldName)
	v.validate.RegisterStructValidation(v.validateDateDirection, models.ValidationRequest{})

	return v
}

// Validate implements [Validator]. obj must be a struct or a pointer to one.
// When fields are given only those top-level struct fields (Go names) are
// checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	validationErrs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   fieldPath(fieldErr.Namespace()),
			Message: getErrorMsg(fieldErr),
			Type:    fieldErr.Tag(),
		})
	}

	return validationErrs
}

// validateDateDirection requires Date to lie in the past when Str is
// "before" and in the future when Str is "after".
func (v *StructValidator) validateDateDirection(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(models.ValidationRequest)
	if !ok || req.Date == nil {
		return
	}

	now := v.now()
	switch req.Str {
	case "before":
		if req.Date.After(now) {
			sl.ReportError(req.Date, "date", "Date", tagBeforeNow, "")
		}
	case "after":
		if req.Date.Before(now) {
			sl.ReportError(req.Date, "date", "Date", tagAfterNow, "")
		}
	}
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid url"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case tagBeforeNow:
		return app.MsgMustBeBeforeToday
	case tagAfterNow:
		return app.MsgMustBeAfterToday
	default:
		return "is invalid"
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, path, ok := strings.Cut(namespace, "."); ok {
		return path
	}
	return namespace
}
