package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/mapper"
	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/internal/repository"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

type studentRepository interface {
	Search(ctx context.Context, filter models.StudentFilter, page models.PageRequest) ([]models.Student, int64, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

type studentEnrollmentChecker interface {
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
}

var errStudentHasEnrollments = appErrors.Clone(appErrors.ErrBadRequest, "Cannot delete student with existing enrollments")

// StudentService handles student use-cases.
type StudentService struct {
	repo        studentRepository
	enrollments studentEnrollmentChecker
	validator   *validator.Validate
	metrics     mutationRecorder
	logger      *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, enrollments studentEnrollmentChecker, validate *validator.Validate, metrics mutationRecorder, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, enrollments: enrollments, validator: validate, metrics: metrics, logger: logger}
}

// Search pages through students. A blank query matches everyone; otherwise first
// name, last name or email must contain it, ignoring case.
func (s *StudentService) Search(ctx context.Context, query string, status models.StudentStatus, page models.PageRequest) (models.Page[dto.StudentResponse], error) {
	if status != "" && !status.Valid() {
		return models.Page[dto.StudentResponse]{}, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("unknown student status: %s", status))
	}
	page = page.WithDefaults()
	students, total, err := s.repo.Search(ctx, models.StudentFilter{Query: query, Status: status}, page)
	if err != nil {
		return models.Page[dto.StudentResponse]{}, storeFailure(s.logger, err, "failed to search students")
	}
	return models.NewPage(mapper.StudentsToResponse(students), page, total), nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.StudentToResponse(student)
	return &resp, nil
}

// Create registers a new student. Emails are unique ignoring case.
func (s *StudentService) Create(ctx context.Context, req dto.StudentCreateRequest) (*dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "student")
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return nil, storeFailure(s.logger, err, "failed to validate email")
	}
	if exists {
		return nil, emailConflict(req.Email)
	}

	student := mapper.StudentFromCreate(req)
	if student.Status == "" {
		student.Status = models.StudentStatusApplied
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, emailConflict(req.Email)
		}
		return nil, storeFailure(s.logger, err, "failed to create student")
	}
	s.metrics.RecordMutation("student", "create")
	s.logger.Info("student created", zap.String("student_id", student.ID))
	resp := mapper.StudentToResponse(student)
	return &resp, nil
}

// Update replaces the mutable fields of a student. Keeping one's own email in any
// casing is allowed; taking another student's is a conflict.
func (s *StudentService) Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (*dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "student")
	}
	student, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, id)
	if err != nil {
		return nil, storeFailure(s.logger, err, "failed to validate email")
	}
	if exists {
		return nil, emailConflict(req.Email)
	}

	mapper.UpdateStudent(student, req)
	if err := s.save(ctx, student); err != nil {
		return nil, err
	}
	s.metrics.RecordMutation("student", "update")
	resp := mapper.StudentToResponse(student)
	return &resp, nil
}

// ChangeStatus overwrites the student's status. Any known status may follow any other.
func (s *StudentService) ChangeStatus(ctx context.Context, id string, status models.StudentStatus) (*dto.StudentResponse, error) {
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("unknown student status: %s", status))
	}
	student, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := student.Status
	student.Status = status
	if err := s.save(ctx, student); err != nil {
		return nil, err
	}
	s.metrics.RecordMutation("student", "status")
	s.logger.Info("student status changed",
		zap.String("student_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)
	resp := mapper.StudentToResponse(student)
	return &resp, nil
}

// Delete hard-deletes a student that has no enrollments.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	hasEnrollments, err := s.enrollments.ExistsByStudentID(ctx, id)
	if err != nil {
		return storeFailure(s.logger, err, "failed to check student enrollments")
	}
	if hasEnrollments {
		return errStudentHasEnrollments
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			return errStudentHasEnrollments
		case errors.Is(err, sql.ErrNoRows):
			return appErrors.NotFound("Student", id)
		}
		return storeFailure(s.logger, err, "failed to delete student")
	}
	s.metrics.RecordMutation("student", "delete")
	s.logger.Info("student deleted", zap.String("student_id", id))
	return nil
}

func (s *StudentService) load(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("Student", id)
		}
		return nil, storeFailure(s.logger, err, "failed to load student")
	}
	return student, nil
}

func (s *StudentService) save(ctx context.Context, student *models.Student) error {
	err := s.repo.Update(ctx, student)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicate):
		return emailConflict(student.Email)
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.NotFound("Student", student.ID)
	default:
		return storeFailure(s.logger, err, "failed to update student")
	}
}

func emailConflict(email string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrConflict, "Email already in use: "+email)
}
