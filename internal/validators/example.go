// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-service-template/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They are Go struct field names, as expected by the underlying validator.
const (
	// FieldName targets the item name.
	FieldName = "Name"

	// FieldDescription targets the item description.
	FieldDescription = "Description"

	// FieldIsActive targets the active flag.
	FieldIsActive = "IsActive"
)

// ExampleValidator implements the Validator interface for the example
// resource requests: ExampleCreateRequest and ExampleUpdateRequest.
//
// Rules live in the `validate` struct tags of the request models; this type
// only dispatches and translates library errors into [ValidationErrors].
type ExampleValidator struct {
	validate *validator.Validate
}

// NewExampleValidator constructs a new ExampleValidator
// and returns it as the Validator interface.
func NewExampleValidator() Validator {
	return &ExampleValidator{validate: newStructValidator()}
}

// Validate checks obj against its struct rules. Both value and pointer
// forms of each supported request are accepted. Optional fields restrict
// validation to the named subset.
//
// Returns ErrUnsupportedType if obj is not a known request type, a
// [ValidationErrors] value if any rule fails, nil otherwise.
func (v *ExampleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ExampleCreateRequest, models.ExampleUpdateRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.ExampleCreateRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, fields...)
	case *models.ExampleUpdateRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// ValidatePage checks the page number of a paginated listing.
func (v *ExampleValidator) ValidatePage(ctx context.Context, page int) error {
	if err := v.validate.VarCtx(ctx, page, "gte=1"); err != nil {
		return translate(err, "query", "page")
	}
	return nil
}

func (v *ExampleValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	return translate(err)
}

// newStructValidator returns a validator that reports fields by their JSON
// names so that error locations match the request body.
func newStructValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return validate
}

// translate converts validator/v10 errors into ValidationErrors. loc, when
// given, replaces the field name as the error location (used for Var checks,
// which have no field).
func translate(err error, loc ...string) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		location := loc
		if len(location) == 0 {
			location = []string{fe.Field()}
		}
		msg, errType := describe(fe)
		result = append(result, models.FieldError{Loc: location, Msg: msg, Type: errType})
	}

	return result
}

// describe maps a failed rule to a message and an error code.
func describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		// a present but empty string is dereferenced before the check
		if s, ok := fe.Value().(string); ok && s == "" {
			return "String should have at least 1 character", "string_too_short"
		}
		return "Field required", "missing"
	case "min":
		return fmt.Sprintf("String should have at least %s %s", fe.Param(), plural(fe.Param(), "character")), "string_too_short"
	case "max":
		return fmt.Sprintf("String should have at most %s %s", fe.Param(), plural(fe.Param(), "character")), "string_too_long"
	case "gte":
		return "Input should be greater than or equal to " + fe.Param(), "greater_than_equal"
	default:
		return fmt.Sprintf("Value failed the %q rule", fe.Tag()), fe.Tag()
	}
}

func plural(count, noun string) string {
	if count == "1" {
		return noun
	}
	return noun + "s"
}
