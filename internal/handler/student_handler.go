package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/pkg/response"
)

type studentService interface {
	Search(ctx context.Context, query string, status models.StudentStatus, page models.PageRequest) (models.Page[dto.StudentResponse], error)
	Get(ctx context.Context, id string) (*dto.StudentResponse, error)
	Create(ctx context.Context, req dto.StudentCreateRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (*dto.StudentResponse, error)
	ChangeStatus(ctx context.Context, id string, status models.StudentStatus) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentService
	pages    PageParser
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService, pages PageParser) *StudentHandler {
	return &StudentHandler{students: students, pages: pages}
}

// Search godoc
// @Summary Search students
// @Tags Students
// @Produce json
// @Param q query string false "Matches first name, last name or email"
// @Param status query string false "Filter by status"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param sort query []string false "field,asc|desc" collectionFormat(multi)
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) Search(c *gin.Context) {
	page, err := h.pages.Parse(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	status := models.StudentStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	result, err := h.students.Search(c.Request.Context(), c.Query("q"), status, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, result)
}

// Get godoc
// @Summary Get student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "student")
	if !ok {
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.StudentCreateRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.StudentCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Update student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.StudentUpdateRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "student")
	if !ok {
		return
	}
	var req dto.StudentUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.students.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// ChangeStatus godoc
// @Summary Change student status
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Param status query string true "New status"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/status [patch]
func (h *StudentHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "student")
	if !ok {
		return
	}
	status := models.StudentStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	student, err := h.students.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204
// @Failure 400 {object} response.ErrorEnvelope
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "student")
	if !ok {
		return
	}
	if err := h.students.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
