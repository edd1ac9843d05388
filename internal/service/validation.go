package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

// NewValidator builds the validator shared by all services. Field names in errors
// follow the json tags, and the custom tags used by the request DTOs are registered:
//
//	notblank  string has a non-whitespace character
//	enum      value reports Valid() == true
//	past      date lies strictly before today (UTC)
//	points    grade points within [MinGradePoints, MaxGradePoints] with at most
//	          GradePointsScale fraction digits
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(models.Date); ok {
			return d.Time
		}
		return nil
	}, models.Date{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "enum", validateEnum)
	mustRegister(v, "past", validatePast)
	mustRegister(v, "points", validatePoints)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

func validateEnum(fl validator.FieldLevel) bool {
	enum, ok := fl.Field().Interface().(interface{ Valid() bool })
	return ok && enum.Valid()
}

func validatePast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok || t.IsZero() {
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.Before(today)
}

// validatePoints receives the exact decimal text from the custom type func, so
// digits beyond float64 precision are still seen.
func validatePoints(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.Cmp(models.MinGradePoints) >= 0 &&
		d.Cmp(models.MaxGradePoints) <= 0 &&
		d.Equal(d.Round(models.GradePointsScale))
}

// validationError converts validator output into a VALIDATION_ERROR naming the
// first failing field.
func validationError(err error, subject string) *appErrors.Error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", subject))
	}
	return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s payload: %s", subject, describeFieldError(fieldErrs[0])))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "uuid":
		return field + " must be a valid UUID"
	case "enum":
		return fmt.Sprintf("%s has unsupported value %v", field, fe.Value())
	case "past":
		return field + " must be in the past"
	case "points":
		return fmt.Sprintf("%s must be between %s and %s with at most %d fraction digits",
			field,
			models.MinGradePoints.StringFixed(models.GradePointsScale),
			models.MaxGradePoints.StringFixed(models.GradePointsScale),
			models.GradePointsScale)
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
