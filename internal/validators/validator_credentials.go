// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	FieldName     = "Name"
	FieldEmail    = "Email"
	FieldPassword = "Password"
)

// CredentialsValidator checks register and login payloads against their
// `validate` struct tags.
type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &CredentialsValidator{validate: v}
}

// Validate checks obj. When fields are given (Go struct field names such as
// [FieldEmail]) only those fields are checked.
//
// The returned error joins one error per failing field; each wraps
// [ErrFieldRequired], [ErrInvalidEmail] or [ErrInvalidField].
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest:
	default:
		return ErrUnsupportedType
	}

	if err := checkFields(obj, fields); err != nil {
		return err
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return translate(err)
}

func checkFields(obj any, fields []string) error {
	typ := reflect.TypeOf(obj)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	for _, field := range fields {
		if _, ok := typ.FieldByName(field); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s %w", fe.Field(), ErrFieldRequired))
		case "email":
			errs = append(errs, fmt.Errorf("%s %w", fe.Field(), ErrInvalidEmail))
		default:
			errs = append(errs, fmt.Errorf("%s %w", fe.Field(), ErrInvalidField))
		}
	}

	return errors.Join(errs...)
}
