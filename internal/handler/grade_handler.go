package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/pkg/response"
)

type gradeService interface {
	Search(ctx context.Context, filter models.GradeFilter, page models.PageRequest) (models.Page[dto.GradeResponse], error)
	Get(ctx context.Context, id string) (*dto.GradeResponse, error)
	Latest(ctx context.Context, enrollmentID string) (*dto.GradeResponse, error)
	Create(ctx context.Context, req dto.GradeCreateRequest) (*dto.GradeResponse, error)
	Update(ctx context.Context, id string, req dto.GradeUpdateRequest) (*dto.GradeResponse, error)
}

// GradeHandler exposes grade endpoints. Grades cannot be deleted.
type GradeHandler struct {
	grades gradeService
	pages  PageParser
}

// NewGradeHandler constructs GradeHandler.
func NewGradeHandler(grades gradeService, pages PageParser) *GradeHandler {
	return &GradeHandler{grades: grades, pages: pages}
}

// Search godoc
// @Summary Search grades
// @Tags Grades
// @Produce json
// @Param enrollmentId query string false "Filter by enrollment"
// @Param letter query string false "Filter by letter"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param sort query []string false "field,asc|desc" collectionFormat(multi)
// @Success 200 {object} response.Envelope
// @Router /grades [get]
func (h *GradeHandler) Search(c *gin.Context) {
	page, err := h.pages.Parse(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.GradeFilter{
		EnrollmentID: strings.TrimSpace(c.Query("enrollmentId")),
		Letter:       strings.TrimSpace(c.Query("letter")),
	}
	result, err := h.grades.Search(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, result)
}

// Get godoc
// @Summary Get grade
// @Tags Grades
// @Produce json
// @Param id path string true "Grade ID"
// @Success 200 {object} response.Envelope
// @Router /grades/{id} [get]
func (h *GradeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "grade")
	if !ok {
		return
	}
	grade, err := h.grades.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grade)
}

// Latest godoc
// @Summary Latest grade of an enrollment
// @Tags Grades
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /enrollments/{id}/grades/latest [get]
func (h *GradeHandler) Latest(c *gin.Context) {
	id, ok := pathID(c, "enrollment")
	if !ok {
		return
	}
	grade, err := h.grades.Latest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grade)
}

// Create godoc
// @Summary Record grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body dto.GradeCreateRequest true "Grade payload"
// @Success 201 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) Create(c *gin.Context) {
	var req dto.GradeCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	grade, err := h.grades.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, grade)
}

// Update godoc
// @Summary Update grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param id path string true "Grade ID"
// @Param payload body dto.GradeUpdateRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Router /grades/{id} [put]
func (h *GradeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "grade")
	if !ok {
		return
	}
	var req dto.GradeUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	grade, err := h.grades.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grade)
}
