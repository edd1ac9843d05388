package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
	"github.com/noah-isme/student-management-api/pkg/response"
)

type courseService interface {
	Search(ctx context.Context, query string, active *bool, page models.PageRequest) (models.Page[dto.CourseResponse], error)
	Get(ctx context.Context, id string) (*dto.CourseResponse, error)
	Create(ctx context.Context, req dto.CourseCreateRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, id string, req dto.CourseUpdateRequest) (*dto.CourseResponse, error)
	SetActive(ctx context.Context, id string, active bool) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id string) error
}

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses courseService
	pages   PageParser
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses courseService, pages PageParser) *CourseHandler {
	return &CourseHandler{courses: courses, pages: pages}
}

// Search godoc
// @Summary Search courses
// @Tags Courses
// @Produce json
// @Param q query string false "Matches code or title"
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param sort query []string false "field,asc|desc" collectionFormat(multi)
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) Search(c *gin.Context) {
	page, err := h.pages.Parse(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	active, err := optionalBool(c, "active")
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.courses.Search(c.Request.Context(), c.Query("q"), active, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, result)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CourseCreateRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CourseCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Update godoc
// @Summary Update course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body dto.CourseUpdateRequest true "Course payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}
	var req dto.CourseUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.courses.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// SetActive godoc
// @Summary Retire or reinstate a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Param active query bool true "Active flag"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/active [patch]
func (h *CourseHandler) SetActive(c *gin.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}
	active, err := optionalBool(c, "active")
	if err != nil {
		response.Error(c, err)
		return
	}
	if active == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, "active is required"))
		return
	}
	course, err := h.courses.SetActive(c.Request.Context(), id, *active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Param id path string true "Course ID"
// @Success 204
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
