package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/student-management-api/internal/models"
)

const gradeColumns = "id, enrollment_id, letter, points, graded_at, notes, created_at, updated_at, deleted_at"

var gradeSortColumns = sortColumns(map[string]string{
	"enrollmentId": "enrollment_id",
	"letter":       "letter",
	"points":       "points",
	"gradedAt":     "graded_at",
})

type gradeRow struct {
	models.BaseEntity
	EnrollmentID string          `db:"enrollment_id"`
	Letter       string          `db:"letter"`
	Points       decimal.Decimal `db:"points"`
	GradedAt     time.Time       `db:"graded_at"`
	Notes        *string         `db:"notes"`
}

func newGradeRow(g *models.Grade) gradeRow {
	return gradeRow{
		BaseEntity:   g.BaseEntity,
		EnrollmentID: g.EnrollmentID(),
		Letter:       g.Letter,
		Points:       g.Points,
		GradedAt:     g.GradedAt,
		Notes:        g.Notes,
	}
}

func (row gradeRow) model() models.Grade {
	return models.Grade{
		BaseEntity: row.BaseEntity,
		Enrollment: models.EnrollmentRef(row.EnrollmentID),
		Letter:     row.Letter,
		Points:     row.Points,
		GradedAt:   row.GradedAt,
		Notes:      row.Notes,
	}
}

// GradeRepository persists grades awarded for enrollments.
type GradeRepository struct {
	db *sqlx.DB
	queryTimer
}

// NewGradeRepository constructs a GradeRepository. observer may be nil.
func NewGradeRepository(db *sqlx.DB, observer QueryObserver) *GradeRepository {
	return &GradeRepository{db: db, queryTimer: queryTimer{observer: observer}}
}

// Search returns one page of grades filtered by enrollment and letter.
func (r *GradeRepository) Search(ctx context.Context, filter models.GradeFilter, page models.PageRequest) ([]models.Grade, int64, error) {
	defer r.observe("grades.search", time.Now())

	args := []interface{}{}
	conditions := []string{"1=1"}
	if filter.EnrollmentID != "" {
		conditions = append(conditions, fmt.Sprintf("enrollment_id = $%d", len(args)+1))
		args = append(args, filter.EnrollmentID)
	}
	if letter := strings.TrimSpace(filter.Letter); letter != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(letter) = LOWER($%d)", len(args)+1))
		args = append(args, letter)
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	clause, err := pageClause(page, gradeSortColumns)
	if err != nil {
		return nil, 0, err
	}

	var rows []gradeRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT "+gradeColumns+" FROM grades"+where+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("search grades: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM grades"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count grades: %w", err)
	}

	grades := make([]models.Grade, 0, len(rows))
	for _, row := range rows {
		grades = append(grades, row.model())
	}
	return grades, total, nil
}

// FindByID fetches a grade by ID.
func (r *GradeRepository) FindByID(ctx context.Context, id string) (*models.Grade, error) {
	defer r.observe("grades.find_by_id", time.Now())

	var row gradeRow
	if err := r.db.GetContext(ctx, &row, "SELECT "+gradeColumns+" FROM grades WHERE id = $1", id); err != nil {
		return nil, err
	}
	grade := row.model()
	return &grade, nil
}

// FindLatestByEnrollmentID returns the most recently graded entry of an enrollment.
func (r *GradeRepository) FindLatestByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Grade, error) {
	defer r.observe("grades.find_latest", time.Now())

	var row gradeRow
	query := "SELECT " + gradeColumns + " FROM grades WHERE enrollment_id = $1 ORDER BY graded_at DESC, created_at DESC LIMIT 1"
	if err := r.db.GetContext(ctx, &row, query, enrollmentID); err != nil {
		return nil, err
	}
	grade := row.model()
	return &grade, nil
}

// Create inserts a grade. An unknown enrollment yields ErrForeignKey.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	defer r.observe("grades.create", time.Now())

	if grade.ID == "" {
		grade.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if grade.CreatedAt.IsZero() {
		grade.CreatedAt = now
	}
	grade.UpdatedAt = now
	if grade.GradedAt.IsZero() {
		grade.GradedAt = now
	}
	const query = `INSERT INTO grades (id, enrollment_id, letter, points, graded_at, notes, created_at, updated_at)
        VALUES (:id, :enrollment_id, :letter, :points, :graded_at, :notes, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, newGradeRow(grade)); err != nil {
		return fmt.Errorf("create grade: %w", translate(err))
	}
	return nil
}

// Update modifies letter, points, graded time and notes. The enrollment never changes.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	defer r.observe("grades.update", time.Now())

	grade.UpdatedAt = time.Now().UTC()
	const query = `UPDATE grades SET letter = :letter, points = :points, graded_at = :graded_at, notes = :notes, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, newGradeRow(grade))
	if err != nil {
		return fmt.Errorf("update grade: %w", translate(err))
	}
	return expectAffected(res)
}
