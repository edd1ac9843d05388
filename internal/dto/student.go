package dto

import (
	"time"

	"github.com/noah-isme/student-management-api/internal/models"
)

// StudentCreateRequest holds payload for creating students. Status defaults to APPLIED.
type StudentCreateRequest struct {
	FirstName string               `json:"firstName" validate:"notblank,max=100"`
	LastName  string               `json:"lastName" validate:"notblank,max=100"`
	Email     string               `json:"email" validate:"notblank,email,max=320"`
	Gender    models.Gender        `json:"gender" validate:"required,enum"`
	BirthDate models.Date          `json:"birthDate" validate:"required,past"`
	Status    models.StudentStatus `json:"status,omitempty" validate:"omitempty,enum"`
}

// StudentUpdateRequest is a full (PUT-style) replacement of the mutable student fields.
type StudentUpdateRequest struct {
	FirstName string               `json:"firstName" validate:"notblank,max=100"`
	LastName  string               `json:"lastName" validate:"notblank,max=100"`
	Email     string               `json:"email" validate:"notblank,email,max=320"`
	Gender    models.Gender        `json:"gender" validate:"required,enum"`
	BirthDate models.Date          `json:"birthDate" validate:"required,past"`
	Status    models.StudentStatus `json:"status" validate:"required,enum"`
}

// StudentResponse is the outbound student shape.
type StudentResponse struct {
	ID        string               `json:"id"`
	FirstName string               `json:"firstName"`
	LastName  string               `json:"lastName"`
	Email     string               `json:"email"`
	Gender    models.Gender        `json:"gender"`
	BirthDate models.Date          `json:"birthDate"`
	Status    models.StudentStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
