// Package mapper converts between request/response DTOs and persisted entities.
// Mappers never assign id or timestamps; those belong to the repositories.
package mapper

import (
	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
)

// StudentToResponse builds the outbound shape of a student.
func StudentToResponse(student *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		Gender:    student.Gender,
		BirthDate: student.BirthDate,
		Status:    student.Status,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
}

// StudentsToResponse maps a list preserving order.
func StudentsToResponse(students []models.Student) []dto.StudentResponse {
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, StudentToResponse(&students[i]))
	}
	return out
}

// StudentFromCreate builds an unsaved student. Status is copied as given; defaults
// are the service's business.
func StudentFromCreate(req dto.StudentCreateRequest) *models.Student {
	return &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
		Status:    req.Status,
	}
}

// UpdateStudent copies every updatable field onto student in place.
func UpdateStudent(student *models.Student, req dto.StudentUpdateRequest) {
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Gender = req.Gender
	student.BirthDate = req.BirthDate
	student.Status = req.Status
}
