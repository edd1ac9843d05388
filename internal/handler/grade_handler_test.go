package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

type gradeServiceStub struct {
	filter    models.GradeFilter
	latestFor string
	created   *dto.GradeCreateRequest
	updatedID string
	resp      *dto.GradeResponse
	err       error
}

func (s *gradeServiceStub) Search(ctx context.Context, filter models.GradeFilter, page models.PageRequest) (models.Page[dto.GradeResponse], error) {
	s.filter = filter
	return models.NewPage[dto.GradeResponse](nil, page, 0), s.err
}

func (s *gradeServiceStub) Get(ctx context.Context, id string) (*dto.GradeResponse, error) {
	return s.resp, s.err
}

func (s *gradeServiceStub) Latest(ctx context.Context, enrollmentID string) (*dto.GradeResponse, error) {
	s.latestFor = enrollmentID
	return s.resp, s.err
}

func (s *gradeServiceStub) Create(ctx context.Context, req dto.GradeCreateRequest) (*dto.GradeResponse, error) {
	s.created = &req
	return s.resp, s.err
}

func (s *gradeServiceStub) Update(ctx context.Context, id string, req dto.GradeUpdateRequest) (*dto.GradeResponse, error) {
	s.updatedID = id
	return s.resp, s.err
}

func TestGradeHandlerSearchFilters(t *testing.T) {
	stub := &gradeServiceStub{}
	r := newTestRouter(Handlers{Grades: NewGradeHandler(stub, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/grades?enrollmentId="+testEnrollmentID+"&letter=a", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.GradeFilter{EnrollmentID: testEnrollmentID, Letter: "a"}, stub.filter)
}

func TestGradeHandlerCreateKeepsPointsScale(t *testing.T) {
	stub := &gradeServiceStub{resp: &dto.GradeResponse{ID: testGradeID, Points: "3.70"}}
	r := newTestRouter(Handlers{Grades: NewGradeHandler(stub, testPages)})

	w := perform(r, http.MethodPost, "/api/v1/grades", `{"enrollmentId":"`+testEnrollmentID+`","letter":"A-","points":3.70}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stub.created)
	require.NotNil(t, stub.created.Points)
	assert.Equal(t, "3.7", stub.created.Points.String())
	assert.Contains(t, w.Body.String(), `"points":3.70`)
}

func TestGradeHandlerLatestRoute(t *testing.T) {
	stub := &gradeServiceStub{resp: &dto.GradeResponse{ID: testGradeID, Points: "4.00"}}
	r := newTestRouter(Handlers{Grades: NewGradeHandler(stub, testPages), Enrollments: NewEnrollmentHandler(&enrollmentServiceStub{}, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/enrollments/"+testEnrollmentID+"/grades/latest", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testEnrollmentID, stub.latestFor)
}

func TestGradeHandlerLatestMissing(t *testing.T) {
	stub := &gradeServiceStub{err: appErrors.NotFound("Grade for enrollment", testEnrollmentID)}
	r := newTestRouter(Handlers{Grades: NewGradeHandler(stub, testPages), Enrollments: NewEnrollmentHandler(&enrollmentServiceStub{}, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/enrollments/"+testEnrollmentID+"/grades/latest", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Grade for enrollment not found: "+testEnrollmentID, decodeError(t, w).Message)
}

func TestGradeHandlerUpdateValidationError(t *testing.T) {
	stub := &gradeServiceStub{err: appErrors.Clone(appErrors.ErrValidation, "invalid grade payload: points must be between 0.00 and 6.00 with at most 2 fraction digits")}
	r := newTestRouter(Handlers{Grades: NewGradeHandler(stub, testPages)})

	w := perform(r, http.MethodPut, "/api/v1/grades/"+testGradeID, `{"letter":"A","points":6.01}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, testGradeID, stub.updatedID)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, w).Code)
}
