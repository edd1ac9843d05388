package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-management-api/internal/service"
	"github.com/noah-isme/student-management-api/pkg/response"
)

type transcriptService interface {
	Export(ctx context.Context, studentID, format string) (*service.TranscriptFile, error)
}

// TranscriptHandler streams student transcripts as downloads.
type TranscriptHandler struct {
	transcripts transcriptService
}

// NewTranscriptHandler constructs TranscriptHandler.
func NewTranscriptHandler(transcripts transcriptService) *TranscriptHandler {
	return &TranscriptHandler{transcripts: transcripts}
}

// Export godoc
// @Summary Download a student's transcript
// @Tags Students
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id}/transcript [get]
func (h *TranscriptHandler) Export(c *gin.Context) {
	id, ok := pathID(c, "student")
	if !ok {
		return
	}
	file, err := h.transcripts.Export(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}
