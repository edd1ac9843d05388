package mapper

import (
	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
)

// EnrollmentToResponse flattens the student and course references to their ids.
func EnrollmentToResponse(enrollment *models.Enrollment) dto.EnrollmentResponse {
	return dto.EnrollmentResponse{
		ID:        enrollment.ID,
		StudentID: enrollment.StudentID(),
		CourseID:  enrollment.CourseID(),
		Term:      enrollment.Term,
		Section:   enrollment.Section,
		Status:    enrollment.Status,
		CreatedAt: enrollment.CreatedAt,
		UpdatedAt: enrollment.UpdatedAt,
	}
}

// EnrollmentsToResponse maps a list preserving order.
func EnrollmentsToResponse(enrollments []models.Enrollment) []dto.EnrollmentResponse {
	out := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, EnrollmentToResponse(&enrollments[i]))
	}
	return out
}

// EnrollmentFromCreate builds an unsaved enrollment with id-only references.
func EnrollmentFromCreate(req dto.EnrollmentCreateRequest) *models.Enrollment {
	return &models.Enrollment{
		Student: models.StudentRef(req.StudentID),
		Course:  models.CourseRef(req.CourseID),
		Term:    req.Term,
		Section: req.Section,
		Status:  req.Status,
	}
}

// UpdateEnrollment copies term, section and status. References are left alone.
func UpdateEnrollment(enrollment *models.Enrollment, req dto.EnrollmentUpdateRequest) {
	enrollment.Term = req.Term
	enrollment.Section = req.Section
	enrollment.Status = req.Status
}
