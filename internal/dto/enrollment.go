package dto

import (
	"time"

	"github.com/noah-isme/student-management-api/internal/models"
)

// EnrollmentCreateRequest registers a student in one course offering.
// Status defaults to REGISTERED.
type EnrollmentCreateRequest struct {
	StudentID string                  `json:"studentId" validate:"required,uuid"`
	CourseID  string                  `json:"courseId" validate:"required,uuid"`
	Term      string                  `json:"term" validate:"notblank,max=20"`
	Section   string                  `json:"section" validate:"notblank,max=10"`
	Status    models.EnrollmentStatus `json:"status,omitempty" validate:"omitempty,enum"`
}

// EnrollmentUpdateRequest replaces the mutable enrollment fields. The student and
// course cannot be reassigned.
type EnrollmentUpdateRequest struct {
	Term    string                  `json:"term" validate:"notblank,max=20"`
	Section string                  `json:"section" validate:"notblank,max=10"`
	Status  models.EnrollmentStatus `json:"status" validate:"required,enum"`
}

// EnrollmentResponse is the outbound enrollment shape.
type EnrollmentResponse struct {
	ID        string                  `json:"id"`
	StudentID string                  `json:"studentId"`
	CourseID  string                  `json:"courseId"`
	Term      string                  `json:"term"`
	Section   string                  `json:"section"`
	Status    models.EnrollmentStatus `json:"status"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
