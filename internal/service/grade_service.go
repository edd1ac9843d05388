package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/mapper"
	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/internal/repository"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
)

type gradeRepository interface {
	Search(ctx context.Context, filter models.GradeFilter, page models.PageRequest) ([]models.Grade, int64, error)
	FindByID(ctx context.Context, id string) (*models.Grade, error)
	FindLatestByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
}

// GradeService records grades against enrollments.
type GradeService struct {
	repo      gradeRepository
	validator *validator.Validate
	metrics   mutationRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewGradeService constructs the grade service.
func NewGradeService(repo gradeRepository, validate *validator.Validate, metrics mutationRecorder, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{repo: repo, validator: validate, metrics: metrics, logger: logger, now: time.Now}
}

// Search pages through grades filtered by enrollment and letter.
func (s *GradeService) Search(ctx context.Context, filter models.GradeFilter, page models.PageRequest) (models.Page[dto.GradeResponse], error) {
	page = page.WithDefaults()
	grades, total, err := s.repo.Search(ctx, filter, page)
	if err != nil {
		return models.Page[dto.GradeResponse]{}, storeFailure(s.logger, err, "failed to search grades")
	}
	return models.NewPage(mapper.GradesToResponse(grades), page, total), nil
}

// Get returns a grade by id.
func (s *GradeService) Get(ctx context.Context, id string) (*dto.GradeResponse, error) {
	grade, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.GradeToResponse(grade)
	return &resp, nil
}

// Latest returns the most recently graded entry of an enrollment.
func (s *GradeService) Latest(ctx context.Context, enrollmentID string) (*dto.GradeResponse, error) {
	grade, err := s.repo.FindLatestByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("Grade for enrollment", enrollmentID)
		}
		return nil, storeFailure(s.logger, err, "failed to load latest grade")
	}
	resp := mapper.GradeToResponse(grade)
	return &resp, nil
}

// Create records a grade. Points lie in [0.00, 6.00] with at most two fraction
// digits; gradedAt defaults to now.
func (s *GradeService) Create(ctx context.Context, req dto.GradeCreateRequest) (*dto.GradeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "grade")
	}
	grade := mapper.GradeFromCreate(req)
	if grade.GradedAt.IsZero() {
		grade.GradedAt = s.now().UTC()
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, appErrors.NotFound("Enrollment", req.EnrollmentID)
		}
		return nil, storeFailure(s.logger, err, "failed to create grade")
	}
	s.metrics.RecordMutation("grade", "create")
	s.logger.Info("grade recorded",
		zap.String("grade_id", grade.ID),
		zap.String("enrollment_id", req.EnrollmentID),
		zap.String("points", grade.Points.StringFixed(models.GradePointsScale)),
	)
	resp := mapper.GradeToResponse(grade)
	return &resp, nil
}

// Update replaces letter, points and notes. The enrollment is fixed and a missing
// gradedAt keeps the recorded one.
func (s *GradeService) Update(ctx context.Context, id string, req dto.GradeUpdateRequest) (*dto.GradeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "grade")
	}
	grade, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	mapper.UpdateGrade(grade, req)
	if err := s.repo.Update(ctx, grade); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("Grade", id)
		}
		return nil, storeFailure(s.logger, err, "failed to update grade")
	}
	s.metrics.RecordMutation("grade", "update")
	resp := mapper.GradeToResponse(grade)
	return &resp, nil
}

func (s *GradeService) load(ctx context.Context, id string) (*models.Grade, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("Grade", id)
		}
		return nil, storeFailure(s.logger, err, "failed to load grade")
	}
	return grade, nil
}
