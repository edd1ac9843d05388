package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-management-api/pkg/response"
)

const (
	testStudentID    = "0b7f2d4e-3c1a-4a8e-9f10-6b2d8c4e1a01"
	testCourseID     = "4d3c2b1a-9e8f-4a7b-8c6d-5e4f3a2b1c02"
	testEnrollmentID = "9a8b7c6d-5e4f-4a3b-9c1d-0e9f8a7b6c03"
	testGradeID      = "1f2e3d4c-5b6a-4798-8a7b-6c5d4e3f2a04"
)

var testPages = PageParser{DefaultSize: 20, MaxSize: 50}

func newTestRouter(h Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, h, RouteOptions{APIPrefix: "/api/v1", MetricsPath: "/metrics"})
	return r
}

func perform(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		payload, _ := json.Marshal(v)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var env response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Error
}

type pagedEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Page          int      `json:"page"`
		Size          int      `json:"size"`
		TotalElements int64    `json:"totalElements"`
		TotalPages    int      `json:"totalPages"`
		First         bool     `json:"first"`
		Last          bool     `json:"last"`
		Sort          []string `json:"sort"`
	} `json:"pagination"`
}
