package mapper

import (
	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
)

// CourseToResponse builds the outbound shape of a course.
func CourseToResponse(course *models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          course.ID,
		Code:        course.Code,
		Title:       course.Title,
		Description: course.Description,
		Credits:     course.Credits,
		Active:      course.Active,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

// CoursesToResponse maps a list preserving order.
func CoursesToResponse(courses []models.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, CourseToResponse(&courses[i]))
	}
	return out
}

// CourseFromCreate builds an unsaved course. A missing active flag means active.
func CourseFromCreate(req dto.CourseCreateRequest) *models.Course {
	course := &models.Course{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Active:      true,
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Active != nil {
		course.Active = *req.Active
	}
	return course
}

// UpdateCourse copies every updatable field onto course in place.
func UpdateCourse(course *models.Course, req dto.CourseUpdateRequest) {
	course.Code = req.Code
	course.Title = req.Title
	course.Description = req.Description
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Active != nil {
		course.Active = *req.Active
	}
}
