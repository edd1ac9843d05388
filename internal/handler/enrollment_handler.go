package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/pkg/response"
)

type enrollmentService interface {
	Search(ctx context.Context, filter models.EnrollmentFilter, page models.PageRequest) (models.Page[dto.EnrollmentResponse], error)
	Get(ctx context.Context, id string) (*dto.EnrollmentResponse, error)
	Create(ctx context.Context, req dto.EnrollmentCreateRequest) (*dto.EnrollmentResponse, error)
	Update(ctx context.Context, id string, req dto.EnrollmentUpdateRequest) (*dto.EnrollmentResponse, error)
	ChangeStatus(ctx context.Context, id string, status models.EnrollmentStatus) (*dto.EnrollmentResponse, error)
}

// EnrollmentHandler exposes enrollment endpoints. Enrollments cannot be deleted.
type EnrollmentHandler struct {
	enrollments enrollmentService
	pages       PageParser
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService, pages PageParser) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, pages: pages}
}

// Search godoc
// @Summary Search enrollments
// @Tags Enrollments
// @Produce json
// @Param studentId query string false "Filter by student"
// @Param courseId query string false "Filter by course"
// @Param status query string false "Filter by status"
// @Param term query string false "Term contains"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param sort query []string false "field,asc|desc" collectionFormat(multi)
// @Success 200 {object} response.Envelope
// @Router /enrollments [get]
func (h *EnrollmentHandler) Search(c *gin.Context) {
	page, err := h.pages.Parse(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.EnrollmentFilter{
		StudentID: strings.TrimSpace(c.Query("studentId")),
		CourseID:  strings.TrimSpace(c.Query("courseId")),
		Term:      c.Query("term"),
		Status:    models.EnrollmentStatus(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
	}
	result, err := h.enrollments.Search(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, result)
}

// Get godoc
// @Summary Get enrollment
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "enrollment")
	if !ok {
		return
	}
	enrollment, err := h.enrollments.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, enrollment)
}

// Create godoc
// @Summary Enroll a student
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body dto.EnrollmentCreateRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req dto.EnrollmentCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Update godoc
// @Summary Update enrollment
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param payload body dto.EnrollmentUpdateRequest true "Enrollment payload"
// @Success 200 {object} response.Envelope
// @Router /enrollments/{id} [put]
func (h *EnrollmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "enrollment")
	if !ok {
		return
	}
	var req dto.EnrollmentUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollments.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, enrollment)
}

// ChangeStatus godoc
// @Summary Change enrollment status
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param status query string true "New status"
// @Success 200 {object} response.Envelope
// @Router /enrollments/{id}/status [patch]
func (h *EnrollmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "enrollment")
	if !ok {
		return
	}
	status := models.EnrollmentStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	enrollment, err := h.enrollments.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, enrollment)
}
