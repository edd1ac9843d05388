package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
	"github.com/noah-isme/student-management-api/pkg/export"
)

const transcriptPageSize = 100

type transcriptStudentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type transcriptCourseReader interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

type transcriptEnrollmentReader interface {
	Search(ctx context.Context, filter models.EnrollmentFilter, page models.PageRequest) ([]models.Enrollment, int64, error)
}

type transcriptGradeReader interface {
	FindLatestByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Grade, error)
}

// TranscriptFile is a rendered transcript ready for download.
type TranscriptFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

var transcriptHeaders = []string{"Course", "Title", "Credits", "Term", "Section", "Status", "Letter", "Points", "Graded At"}

// TranscriptService renders a student's enrollments and latest grades.
type TranscriptService struct {
	students    transcriptStudentReader
	courses     transcriptCourseReader
	enrollments transcriptEnrollmentReader
	grades      transcriptGradeReader
	logger      *zap.Logger
	now         func() time.Time
	newRenderer func(export.Format) (export.Renderer, error)
}

// NewTranscriptService constructs the transcript exporter.
func NewTranscriptService(students transcriptStudentReader, courses transcriptCourseReader, enrollments transcriptEnrollmentReader, grades transcriptGradeReader, logger *zap.Logger) *TranscriptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptService{students: students, courses: courses, enrollments: enrollments, grades: grades, logger: logger, now: time.Now, newRenderer: export.NewRenderer}
}

// Export renders the transcript of a student as csv or pdf. Enrollments without a
// grade are listed with empty grade columns.
func (s *TranscriptService) Export(ctx context.Context, studentID, format string) (*TranscriptFile, error) {
	parsed, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, err.Error())
	}
	renderer, err := s.newRenderer(parsed)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, err.Error())
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFound("Student", studentID)
		}
		return nil, storeFailure(s.logger, err, "failed to load student")
	}

	enrollments, err := s.allEnrollments(ctx, studentID)
	if err != nil {
		return nil, storeFailure(s.logger, err, "failed to load enrollments")
	}

	courses := make(map[string]*models.Course)
	rows := make([][]string, 0, len(enrollments))
	for i := range enrollments {
		enrollment := &enrollments[i]
		course, ok := courses[enrollment.CourseID()]
		if !ok {
			course, err = s.courses.FindByID(ctx, enrollment.CourseID())
			if err != nil {
				return nil, storeFailure(s.logger, err, "failed to load course")
			}
			courses[enrollment.CourseID()] = course
		}
		grade, err := s.grades.FindLatestByEnrollmentID(ctx, enrollment.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, storeFailure(s.logger, err, "failed to load grade")
		}
		rows = append(rows, transcriptRow(course, enrollment, grade))
	}

	generated := s.now().UTC()
	data, err := renderer.Render(export.Document{
		Title: "Academic Transcript",
		Summary: []string{
			fmt.Sprintf("Student: %s %s <%s>", student.FirstName, student.LastName, student.Email),
			fmt.Sprintf("Status: %s", student.Status),
			fmt.Sprintf("Generated: %s", generated.Format(time.RFC3339)),
		},
		Headers: transcriptHeaders,
		Rows:    rows,
	})
	if err != nil {
		s.logger.Error("transcript render failed",
			zap.String("student_id", studentID),
			zap.String("format", string(parsed)),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript")
	}

	s.logger.Info("transcript exported",
		zap.String("student_id", studentID),
		zap.String("format", string(parsed)),
		zap.Int("enrollments", len(rows)),
	)
	return &TranscriptFile{
		Filename:    fmt.Sprintf("transcript-%s-%s.%s", studentID, generated.Format("20060102"), parsed),
		ContentType: parsed.ContentType(),
		Data:        data,
	}, nil
}

func (s *TranscriptService) allEnrollments(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	page := models.PageRequest{Size: transcriptPageSize, Sort: []models.SortOrder{
		{Field: "term", Direction: models.SortAsc},
		{Field: "createdAt", Direction: models.SortAsc},
	}}
	var all []models.Enrollment
	for {
		batch, total, err := s.enrollments.Search(ctx, models.EnrollmentFilter{StudentID: studentID}, page)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			return all, nil
		}
		page.Page++
	}
}

func transcriptRow(course *models.Course, enrollment *models.Enrollment, grade *models.Grade) []string {
	row := []string{course.Code, course.Title, fmt.Sprintf("%d", course.Credits), enrollment.Term, enrollment.Section, string(enrollment.Status), "", "", ""}
	if grade != nil {
		row[6] = grade.Letter
		row[7] = grade.Points.StringFixed(models.GradePointsScale)
		row[8] = grade.GradedAt.UTC().Format(time.RFC3339)
	}
	return row
}
