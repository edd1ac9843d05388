package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

type studentServiceStub struct {
	searchQuery  string
	searchStatus models.StudentStatus
	searchPage   models.PageRequest
	searchResult models.Page[dto.StudentResponse]

	getCalled bool
	created   *dto.StudentCreateRequest
	statusArg models.StudentStatus
	deletedID string
	resp      *dto.StudentResponse
	err       error
}

func (s *studentServiceStub) Search(ctx context.Context, query string, status models.StudentStatus, page models.PageRequest) (models.Page[dto.StudentResponse], error) {
	s.searchQuery, s.searchStatus, s.searchPage = query, status, page
	return s.searchResult, s.err
}

func (s *studentServiceStub) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	s.getCalled = true
	return s.resp, s.err
}

func (s *studentServiceStub) Create(ctx context.Context, req dto.StudentCreateRequest) (*dto.StudentResponse, error) {
	s.created = &req
	return s.resp, s.err
}

func (s *studentServiceStub) Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (*dto.StudentResponse, error) {
	return s.resp, s.err
}

func (s *studentServiceStub) ChangeStatus(ctx context.Context, id string, status models.StudentStatus) (*dto.StudentResponse, error) {
	s.statusArg = status
	return s.resp, s.err
}

func (s *studentServiceStub) Delete(ctx context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func sampleStudent() *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:        testStudentID,
		FirstName: "Jerald",
		LastName:  "Capao",
		Email:     "Jerald.Capao@example.com",
		Gender:    models.GenderMale,
		BirthDate: models.NewDate(1990, time.September, 1),
		Status:    models.StudentStatusApplied,
	}
}

func TestStudentHandlerSearchParsesQuery(t *testing.T) {
	stub := &studentServiceStub{}
	stub.searchResult = models.NewPage([]dto.StudentResponse{*sampleStudent()}, models.PageRequest{Page: 1, Size: 5}, 6)
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/students?q=capao&status=enrolled&page=1&size=5&sort=lastName,desc&sort=firstName", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "capao", stub.searchQuery)
	assert.Equal(t, models.StudentStatusEnrolled, stub.searchStatus)
	assert.Equal(t, 1, stub.searchPage.Page)
	assert.Equal(t, 5, stub.searchPage.Size)
	assert.Equal(t, []string{"lastName,desc", "firstName,asc"}, stub.searchPage.SortTokens())

	var env pagedEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 1, env.Pagination.Page)
	assert.Equal(t, int64(6), env.Pagination.TotalElements)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.True(t, env.Pagination.Last)
	assert.Contains(t, string(env.Data), "Jerald.Capao@example.com")
}

func TestStudentHandlerSearchEmptyPageRendersEmptyArray(t *testing.T) {
	stub := &studentServiceStub{searchResult: models.NewPage[dto.StudentResponse](nil, models.PageRequest{Size: 20}, 0)}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/students", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var env pagedEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestStudentHandlerRejectsBadPaging(t *testing.T) {
	stub := &studentServiceStub{}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/students?page=-1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodGet, "/api/v1/students?sort=lastName,sideways", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, stub.searchQuery)
}

func TestStudentHandlerGetMalformedID(t *testing.T) {
	stub := &studentServiceStub{}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/students/not-a-uuid", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, stub.getCalled)
	body := decodeError(t, w)
	assert.Equal(t, "invalid student id: not-a-uuid", body.Message)
	assert.Equal(t, "/api/v1/students/not-a-uuid", body.Path)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	stub := &studentServiceStub{err: appErrors.NotFound("Student", testStudentID)}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodGet, "/api/v1/students/"+testStudentID, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Student not found: "+testStudentID, body.Message)
}

func TestStudentHandlerCreate(t *testing.T) {
	stub := &studentServiceStub{resp: sampleStudent()}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodPost, "/api/v1/students", `{"firstName":"Jerald","lastName":"Capao","email":"Jerald.Capao@example.com","gender":"MALE","birthDate":"1990-09-01"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stub.created)
	assert.Equal(t, "Jerald.Capao@example.com", stub.created.Email)
	assert.Equal(t, "1990-09-01", stub.created.BirthDate.Format("2006-01-02"))
	assert.Contains(t, w.Body.String(), `"birthDate":"1990-09-01"`)
}

func TestStudentHandlerCreateMalformedBody(t *testing.T) {
	stub := &studentServiceStub{}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodPost, "/api/v1/students", `{"firstName":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, stub.created)
}

func TestStudentHandlerCreateConflict(t *testing.T) {
	stub := &studentServiceStub{err: appErrors.Clone(appErrors.ErrConflict, "Email already in use: a@b.com")}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodPost, "/api/v1/students", dto.StudentCreateRequest{Email: "a@b.com"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already in use: a@b.com", decodeError(t, w).Message)
}

func TestStudentHandlerChangeStatusUppercases(t *testing.T) {
	stub := &studentServiceStub{resp: sampleStudent()}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodPatch, "/api/v1/students/"+testStudentID+"/status?status=graduated", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StudentStatusGraduated, stub.statusArg)
}

func TestStudentHandlerDelete(t *testing.T) {
	stub := &studentServiceStub{}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodDelete, "/api/v1/students/"+testStudentID, nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, testStudentID, stub.deletedID)
}

func TestStudentHandlerDeleteWithEnrollments(t *testing.T) {
	stub := &studentServiceStub{err: appErrors.Clone(appErrors.ErrBadRequest, "Cannot delete student with existing enrollments")}
	r := newTestRouter(Handlers{Students: NewStudentHandler(stub, testPages)})

	w := perform(r, http.MethodDelete, "/api/v1/students/"+testStudentID, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot delete student with existing enrollments", decodeError(t, w).Message)
}
