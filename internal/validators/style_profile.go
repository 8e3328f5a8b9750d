package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/style-keeper/models"
	"github.com/go-playground/validator/v10"
)

const platformTag = "platform"

// fieldErrors maps struct field names to the sentinel reported for them.
var fieldErrors = map[string]error{
	"UserID":     ErrInvalidUserID,
	"Platform":   ErrInvalidPlatform,
	"AccountRef": ErrInvalidAccountRef,
	"Count":      ErrInvalidCount,
}

// StyleProfileValidator validates style profile requests with the
// `validate` struct tags declared on the models.
type StyleProfileValidator struct {
	validate *validator.Validate
}

// NewStyleProfileValidator returns a Validator for models.ProfileKey,
// models.ExtractRequest and models.UsageRequest.
func NewStyleProfileValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation(platformTag, func(fl validator.FieldLevel) bool {
		return models.IsSupportedPlatform(fl.Field().String())
	})

	return &StyleProfileValidator{validate: v}
}

// Validate implements Validator. fields, when given, restrict validation to
// the named struct fields.
func (v *StyleProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileKey, models.ExtractRequest, models.UsageRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.ProfileKey:
		return v.validateStruct(ctx, *value, fields...)
	case *models.ExtractRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.UsageRequest:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StyleProfileValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	first := validationErrors[0]
	if sentinel, ok := fieldErrors[first.StructField()]; ok {
		return fmt.Errorf("%w: %w: failed on %q", ErrInvalidInput, sentinel, first.Tag())
	}
	return fmt.Errorf("%w: %s failed on %q", ErrInvalidInput, first.StructField(), first.Tag())
}
