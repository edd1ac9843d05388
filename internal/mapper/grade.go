package mapper

import (
	"encoding/json"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
)

// GradeToResponse flattens the enrollment reference and renders points with two
// fraction digits.
func GradeToResponse(grade *models.Grade) dto.GradeResponse {
	return dto.GradeResponse{
		ID:           grade.ID,
		EnrollmentID: grade.EnrollmentID(),
		Letter:       grade.Letter,
		Points:       json.Number(grade.Points.StringFixed(models.GradePointsScale)),
		GradedAt:     grade.GradedAt,
		Notes:        grade.Notes,
		CreatedAt:    grade.CreatedAt,
		UpdatedAt:    grade.UpdatedAt,
	}
}

// GradesToResponse maps a list preserving order.
func GradesToResponse(grades []models.Grade) []dto.GradeResponse {
	out := make([]dto.GradeResponse, 0, len(grades))
	for i := range grades {
		out = append(out, GradeToResponse(&grades[i]))
	}
	return out
}

// GradeFromCreate builds an unsaved grade referencing its enrollment by id.
// A zero GradedAt is filled in by the service.
func GradeFromCreate(req dto.GradeCreateRequest) *models.Grade {
	grade := &models.Grade{
		Enrollment: models.EnrollmentRef(req.EnrollmentID),
		Letter:     req.Letter,
		Notes:      req.Notes,
	}
	if req.Points != nil {
		grade.Points = *req.Points
	}
	if req.GradedAt != nil {
		grade.GradedAt = *req.GradedAt
	}
	return grade
}

// UpdateGrade copies letter, points and notes, and gradedAt when supplied.
func UpdateGrade(grade *models.Grade, req dto.GradeUpdateRequest) {
	grade.Letter = req.Letter
	if req.Points != nil {
		grade.Points = *req.Points
	}
	if req.GradedAt != nil {
		grade.GradedAt = *req.GradedAt
	}
	grade.Notes = req.Notes
}
