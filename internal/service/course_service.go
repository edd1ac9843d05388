package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/mapper"
	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/internal/repository"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

type courseRepository interface {
	Search(ctx context.Context, filter models.CourseFilter, page models.PageRequest) ([]models.Course, int64, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type courseEnrollmentChecker interface {
	ExistsByCourseID(ctx context.Context, courseID string) (bool, error)
}

var errCourseHasEnrollments = appErrors.Clone(appErrors.ErrBadRequest, "Cannot delete course with existing enrollments")

// CourseService manages the course catalogue.
type CourseService struct {
	repo        courseRepository
	enrollments courseEnrollmentChecker
	validator   *validator.Validate
	metrics     mutationRecorder
	logger      *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, enrollments courseEnrollmentChecker, validate *validator.Validate, metrics mutationRecorder, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, enrollments: enrollments, validator: validate, metrics: metrics, logger: logger}
}

// Search pages through courses whose code or title contains query. A non-nil active
// restricts the result to active or retired courses.
func (s *CourseService) Search(ctx context.Context, query string, active *bool, page models.PageRequest) (models.Page[dto.CourseResponse], error) {
	page = page.WithDefaults()
	courses, total, err := s.repo.Search(ctx, models.CourseFilter{Query: query, Active: active}, page)
	if err != nil {
		return models.Page[dto.CourseResponse]{}, storeFailure(s.logger, err, "failed to search courses")
	}
	return models.NewPage(mapper.CoursesToResponse(courses), page, total), nil
}

// Get returns a course by id.
func (s *CourseService) Get(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.CourseToResponse(course)
	return &resp, nil
}

// Create adds a course. Codes are unique ignoring case.
func (s *CourseService) Create(ctx context.Context, req dto.CourseCreateRequest) (*dto.CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "course")
	}
	exists, err := s.repo.ExistsByCode(ctx, req.Code, "")
	if err != nil {
		return nil, storeFailure(s.logger, err, "failed to validate course code")
	}
	if exists {
		return nil, codeConflict(req.Code)
	}

	course := mapper.CourseFromCreate(req)
	if err := s.repo.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, codeConflict(req.Code)
		}
		return nil, storeFailure(s.logger, err, "failed to create course")
	}
	s.metrics.RecordMutation("course", "create")
	s.logger.Info("course created", zap.String("course_id", course.ID), zap.String("code", course.Code))
	resp := mapper.CourseToResponse(course)
	return &resp, nil
}

// Update replaces the mutable fields of a course.
func (s *CourseService) Update(ctx context.Context, id string, req dto.CourseUpdateRequest) (*dto.CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "course")
	}
	course, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.ExistsByCode(ctx, req.Code, id)
	if err != nil {
		return nil, storeFailure(s.logger, err, "failed to validate course code")
	}
	if exists {
		return nil, codeConflict(req.Code)
	}

	mapper.UpdateCourse(course, req)
	if err := s.save(ctx, course); err != nil {
		return nil, err
	}
	s.metrics.RecordMutation("course", "update")
	resp := mapper.CourseToResponse(course)
	return &resp, nil
}

// SetActive retires or reinstates a course without touching its enrollments.
func (s *CourseService) SetActive(ctx context.Context, id string, active bool) (*dto.CourseResponse, error) {
	course, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Active = active
	if err := s.save(ctx, course); err != nil {
		return nil, err
	}
	s.metrics.RecordMutation("course", "active")
	s.logger.Info("course activation changed", zap.String("course_id", id), zap.Bool("active", active))
	resp := mapper.CourseToResponse(course)
	return &resp, nil
}

// Delete hard-deletes a course nobody is enrolled in.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	hasEnrollments, err := s.enrollments.ExistsByCourseID(ctx, id)
	if err != nil {
		return storeFailure(s.logger, err, "failed to check course enrollments")
	}
	if hasEnrollments {
		return errCourseHasEnrollments
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			return errCourseHasEnrollments
		case errors.Is(err, sql.ErrNoRows):
			return appErrors.NotFound("Course", id)
		}
		return storeFailure(s.logger, err, "failed to delete course")
	}
	s.metrics.RecordMutation("course", "delete")
	s.logger.Info("course deleted", zap.String("course_id", id))
	return nil
}

func (s *CourseService) load(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("Course", id)
		}
		return nil, storeFailure(s.logger, err, "failed to load course")
	}
	return course, nil
}

func (s *CourseService) save(ctx context.Context, course *models.Course) error {
	err := s.repo.Update(ctx, course)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicate):
		return codeConflict(course.Code)
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.NotFound("Course", course.ID)
	default:
		return storeFailure(s.logger, err, "failed to update course")
	}
}

func codeConflict(code string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrConflict, "Course code already in use: "+code)
}
