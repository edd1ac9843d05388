package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

func TestValidatorUsesJSONFieldNames(t *testing.T) {
	v := NewValidator()
	err := v.Struct(dto.EnrollmentUpdateRequest{Term: "2024F", Section: "A"})
	require.Error(t, err)

	appErr := validationError(err, "enrollment")
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "invalid enrollment payload: status is required", appErr.Message)
}

func TestValidatorPastRejectsToday(t *testing.T) {
	v := NewValidator()
	now := time.Now().UTC()
	req := dto.StudentCreateRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Gender:    models.GenderFemale,
		BirthDate: models.NewDate(now.Year(), now.Month(), now.Day()),
	}
	assert.Error(t, v.Struct(req))

	yesterday := now.AddDate(0, 0, -1)
	req.BirthDate = models.NewDate(yesterday.Year(), yesterday.Month(), yesterday.Day())
	assert.NoError(t, v.Struct(req))

	req.BirthDate = models.Date{}
	assert.Error(t, v.Struct(req))
}

func TestValidatorDescriptionLength(t *testing.T) {
	v := NewValidator()
	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}
	description := string(long)
	credits := 3
	err := v.Struct(dto.CourseCreateRequest{Code: "CS101", Title: "Intro", Description: &description, Credits: &credits})
	require.Error(t, err)
	assert.Equal(t, "invalid course payload: description must be at most 2000 characters", validationError(err, "course").Message)
}

func TestValidatorPointsUsesExactDecimal(t *testing.T) {
	v := NewValidator()
	points := decimal.RequireFromString("6.0000000000000001")
	err := v.Struct(dto.GradeUpdateRequest{Letter: "A", Points: &points})
	require.Error(t, err)
	assert.Equal(t, "invalid grade payload: points must be between 0.00 and 6.00 with at most 2 fraction digits", validationError(err, "grade").Message)

	for _, raw := range []string{"0", "0.00", "6", "6.00", "2.5", "3.75"} {
		ok := decimal.RequireFromString(raw)
		assert.NoError(t, v.Struct(dto.GradeUpdateRequest{Letter: "A", Points: &ok}), raw)
	}
}
