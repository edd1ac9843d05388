package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

func newContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func TestErrorEnvelope(t *testing.T) {
	c, w := newContext("/api/v1/students/42")
	Error(c, appErrors.NotFound("Student", "42"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Student not found: 42", body.Error.Message)
	assert.Equal(t, http.StatusNotFound, body.Error.Status)
	assert.Equal(t, "/api/v1/students/42", body.Error.Path)
	assert.False(t, body.Error.Timestamp.IsZero())
	assert.Len(t, c.Errors, 1)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, w := newContext("/api/v1/courses")
	Error(c, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
}

func TestPagedEnvelope(t *testing.T) {
	c, w := newContext("/api/v1/students")
	req := models.PageRequest{Page: 0, Size: 2}.WithDefaults()
	Paged(c, models.NewPage([]string{}, req, 0))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data       []string        `json:"data"`
		Pagination models.PageMeta `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Data)
	assert.Equal(t, 0, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.First)
	assert.True(t, body.Pagination.Last)
	assert.Equal(t, []string{"createdAt,desc"}, body.Pagination.Sort)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestAttachment(t *testing.T) {
	c, w := newContext("/api/v1/students/1/transcript")
	Attachment(c, "transcript.csv", "text/csv; charset=utf-8", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="transcript.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", w.Body.String())
}
