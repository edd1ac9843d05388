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

type enrollmentRepository interface {
	Search(ctx context.Context, filter models.EnrollmentFilter, page models.PageRequest) ([]models.Enrollment, int64, error)
	FindByID(ctx context.Context, id string) (*models.Enrollment, error)
	ExistsByOffering(ctx context.Context, studentID, courseID, term, section, excludeID string) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Update(ctx context.Context, enrollment *models.Enrollment) error
}

// EnrollmentService registers students into course offerings.
type EnrollmentService struct {
	repo      enrollmentRepository
	validator *validator.Validate
	metrics   mutationRecorder
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, metrics mutationRecorder, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Search pages through enrollments filtered by student, course, status and term.
func (s *EnrollmentService) Search(ctx context.Context, filter models.EnrollmentFilter, page models.PageRequest) (models.Page[dto.EnrollmentResponse], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return models.Page[dto.EnrollmentResponse]{}, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("unknown enrollment status: %s", filter.Status))
	}
	page = page.WithDefaults()
	enrollments, total, err := s.repo.Search(ctx, filter, page)
	if err != nil {
		return models.Page[dto.EnrollmentResponse]{}, storeFailure(s.logger, err, "failed to search enrollments")
	}
	return models.NewPage(mapper.EnrollmentsToResponse(enrollments), page, total), nil
}

// Get returns an enrollment by id.
func (s *EnrollmentService) Get(ctx context.Context, id string) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.EnrollmentToResponse(enrollment)
	return &resp, nil
}

// Create enrolls a student in a course section for a term. A student holds each
// (course, term, section) offering at most once.
func (s *EnrollmentService) Create(ctx context.Context, req dto.EnrollmentCreateRequest) (*dto.EnrollmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "enrollment")
	}
	exists, err := s.repo.ExistsByOffering(ctx, req.StudentID, req.CourseID, req.Term, req.Section, "")
	if err != nil {
		return nil, storeFailure(s.logger, err, "failed to validate enrollment")
	}
	if exists {
		return nil, offeringConflict(req.StudentID, req.CourseID, req.Term, req.Section)
	}

	enrollment := mapper.EnrollmentFromCreate(req)
	if enrollment.Status == "" {
		enrollment.Status = models.EnrollmentStatusRegistered
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, offeringConflict(req.StudentID, req.CourseID, req.Term, req.Section)
		case errors.Is(err, repository.ErrForeignKey):
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Student or course not found: %s, %s", req.StudentID, req.CourseID))
		}
		return nil, storeFailure(s.logger, err, "failed to create enrollment")
	}
	s.metrics.RecordMutation("enrollment", "create")
	s.logger.Info("enrollment created",
		zap.String("enrollment_id", enrollment.ID),
		zap.String("student_id", req.StudentID),
		zap.String("course_id", req.CourseID),
	)
	resp := mapper.EnrollmentToResponse(enrollment)
	return &resp, nil
}

// Update changes term, section and status. Student and course stay fixed.
func (s *EnrollmentService) Update(ctx context.Context, id string, req dto.EnrollmentUpdateRequest) (*dto.EnrollmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "enrollment")
	}
	enrollment, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.ExistsByOffering(ctx, enrollment.StudentID(), enrollment.CourseID(), req.Term, req.Section, id)
	if err != nil {
		return nil, storeFailure(s.logger, err, "failed to validate enrollment")
	}
	if exists {
		return nil, offeringConflict(enrollment.StudentID(), enrollment.CourseID(), req.Term, req.Section)
	}

	mapper.UpdateEnrollment(enrollment, req)
	if err := s.save(ctx, enrollment); err != nil {
		return nil, err
	}
	s.metrics.RecordMutation("enrollment", "update")
	resp := mapper.EnrollmentToResponse(enrollment)
	return &resp, nil
}

// ChangeStatus overwrites the enrollment status. There is no transition graph.
func (s *EnrollmentService) ChangeStatus(ctx context.Context, id string, status models.EnrollmentStatus) (*dto.EnrollmentResponse, error) {
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("unknown enrollment status: %s", status))
	}
	enrollment, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	enrollment.Status = status
	if err := s.save(ctx, enrollment); err != nil {
		return nil, err
	}
	s.metrics.RecordMutation("enrollment", "status")
	s.logger.Info("enrollment status changed", zap.String("enrollment_id", id), zap.String("status", string(status)))
	resp := mapper.EnrollmentToResponse(enrollment)
	return &resp, nil
}

func (s *EnrollmentService) load(ctx context.Context, id string) (*models.Enrollment, error) {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("Enrollment", id)
		}
		return nil, storeFailure(s.logger, err, "failed to load enrollment")
	}
	return enrollment, nil
}

func (s *EnrollmentService) save(ctx context.Context, enrollment *models.Enrollment) error {
	err := s.repo.Update(ctx, enrollment)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicate):
		return offeringConflict(enrollment.StudentID(), enrollment.CourseID(), enrollment.Term, enrollment.Section)
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.NotFound("Enrollment", enrollment.ID)
	default:
		return storeFailure(s.logger, err, "failed to update enrollment")
	}
}

func offeringConflict(studentID, courseID, term, section string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf(
		"Student %s is already enrolled in course %s for term %s section %s", studentID, courseID, term, section))
}
