package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-management-api/internal/models"
)

const enrollmentColumns = "id, student_id, course_id, term, section, status, created_at, updated_at, deleted_at"

var enrollmentSortColumns = sortColumns(map[string]string{
	"studentId": "student_id",
	"courseId":  "course_id",
	"term":      "term",
	"section":   "section",
	"status":    "status",
})

// enrollmentRow is the flat table shape; references are bare ids.
type enrollmentRow struct {
	models.BaseEntity
	StudentID string                  `db:"student_id"`
	CourseID  string                  `db:"course_id"`
	Term      string                  `db:"term"`
	Section   string                  `db:"section"`
	Status    models.EnrollmentStatus `db:"status"`
}

func newEnrollmentRow(e *models.Enrollment) enrollmentRow {
	return enrollmentRow{
		BaseEntity: e.BaseEntity,
		StudentID:  e.StudentID(),
		CourseID:   e.CourseID(),
		Term:       e.Term,
		Section:    e.Section,
		Status:     e.Status,
	}
}

func (row enrollmentRow) model() models.Enrollment {
	return models.Enrollment{
		BaseEntity: row.BaseEntity,
		Student:    models.StudentRef(row.StudentID),
		Course:     models.CourseRef(row.CourseID),
		Term:       row.Term,
		Section:    row.Section,
		Status:     row.Status,
	}
}

// EnrollmentRepository persists student-course registrations.
type EnrollmentRepository struct {
	db *sqlx.DB
	queryTimer
}

// NewEnrollmentRepository constructs an EnrollmentRepository. observer may be nil.
func NewEnrollmentRepository(db *sqlx.DB, observer QueryObserver) *EnrollmentRepository {
	return &EnrollmentRepository{db: db, queryTimer: queryTimer{observer: observer}}
}

// Search returns one page of enrollments matching every set filter field.
func (r *EnrollmentRepository) Search(ctx context.Context, filter models.EnrollmentFilter, page models.PageRequest) ([]models.Enrollment, int64, error) {
	defer r.observe("enrollments.search", time.Now())

	args := []interface{}{}
	conditions := []string{"1=1"}
	if filter.StudentID != "" {
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.CourseID != "" {
		conditions = append(conditions, fmt.Sprintf("course_id = $%d", len(args)+1))
		args = append(args, filter.CourseID)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if term := strings.TrimSpace(filter.Term); term != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(term) LIKE $%d", len(args)+1))
		args = append(args, containsPattern(term))
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	clause, err := pageClause(page, enrollmentSortColumns)
	if err != nil {
		return nil, 0, err
	}

	var rows []enrollmentRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT "+enrollmentColumns+" FROM enrollments"+where+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("search enrollments: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM enrollments"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count enrollments: %w", err)
	}

	enrollments := make([]models.Enrollment, 0, len(rows))
	for _, row := range rows {
		enrollments = append(enrollments, row.model())
	}
	return enrollments, total, nil
}

// FindByID fetches an enrollment by ID.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	defer r.observe("enrollments.find_by_id", time.Now())

	var row enrollmentRow
	if err := r.db.GetContext(ctx, &row, "SELECT "+enrollmentColumns+" FROM enrollments WHERE id = $1", id); err != nil {
		return nil, err
	}
	enrollment := row.model()
	return &enrollment, nil
}

// ExistsByOffering checks whether the student already holds the (course, term, section)
// offering, optionally excluding an ID.
func (r *EnrollmentRepository) ExistsByOffering(ctx context.Context, studentID, courseID, term, section, excludeID string) (bool, error) {
	defer r.observe("enrollments.exists_by_offering", time.Now())

	query := "SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2 AND term = $3 AND section = $4"
	args := []interface{}{studentID, courseID, term, section}
	if excludeID != "" {
		query += " AND id <> $5"
		args = append(args, excludeID)
	}
	return r.exists(ctx, query, args...)
}

// ExistsByStudentID reports whether any enrollment references the student.
func (r *EnrollmentRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	defer r.observe("enrollments.exists_by_student", time.Now())
	return r.exists(ctx, "SELECT 1 FROM enrollments WHERE student_id = $1", studentID)
}

// ExistsByCourseID reports whether any enrollment references the course.
func (r *EnrollmentRepository) ExistsByCourseID(ctx context.Context, courseID string) (bool, error) {
	defer r.observe("enrollments.exists_by_course", time.Now())
	return r.exists(ctx, "SELECT 1 FROM enrollments WHERE course_id = $1", courseID)
}

func (r *EnrollmentRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}

// Create inserts an enrollment. An unknown student or course yields ErrForeignKey.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	defer r.observe("enrollments.create", time.Now())

	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = now
	}
	enrollment.UpdatedAt = now
	const query = `INSERT INTO enrollments (id, student_id, course_id, term, section, status, created_at, updated_at)
        VALUES (:id, :student_id, :course_id, :term, :section, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, newEnrollmentRow(enrollment)); err != nil {
		return fmt.Errorf("create enrollment: %w", translate(err))
	}
	return nil
}

// Update modifies term, section and status. Student and course never change.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	defer r.observe("enrollments.update", time.Now())

	enrollment.UpdatedAt = time.Now().UTC()
	const query = `UPDATE enrollments SET term = :term, section = :section, status = :status, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, newEnrollmentRow(enrollment))
	if err != nil {
		return fmt.Errorf("update enrollment: %w", translate(err))
	}
	return expectAffected(res)
}
