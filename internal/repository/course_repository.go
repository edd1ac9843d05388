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

const courseColumns = "id, code, title, description, credits, active, created_at, updated_at, deleted_at"

var courseSortColumns = sortColumns(map[string]string{
	"code":    "code",
	"title":   "title",
	"credits": "credits",
	"active":  "active",
})

// CourseRepository manages persistence for the course catalogue.
type CourseRepository struct {
	db *sqlx.DB
	queryTimer
}

// NewCourseRepository constructs a CourseRepository. observer may be nil.
func NewCourseRepository(db *sqlx.DB, observer QueryObserver) *CourseRepository {
	return &CourseRepository{db: db, queryTimer: queryTimer{observer: observer}}
}

// Search returns one page of courses whose code or title contains the query.
func (r *CourseRepository) Search(ctx context.Context, filter models.CourseFilter, page models.PageRequest) ([]models.Course, int64, error) {
	defer r.observe("courses.search", time.Now())

	args := []interface{}{}
	conditions := []string{"1=1"}
	if q := strings.TrimSpace(filter.Query); q != "" {
		n := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(code) LIKE $%d OR LOWER(title) LIKE $%d)", n, n))
		args = append(args, containsPattern(q))
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", len(args)+1))
		args = append(args, *filter.Active)
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	clause, err := pageClause(page, courseSortColumns)
	if err != nil {
		return nil, 0, err
	}

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, "SELECT "+courseColumns+" FROM courses"+where+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("search courses: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM courses"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}
	return courses, total, nil
}

// FindByID fetches a course by ID.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	defer r.observe("courses.find_by_id", time.Now())

	var course models.Course
	if err := r.db.GetContext(ctx, &course, "SELECT "+courseColumns+" FROM courses WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &course, nil
}

// ExistsByCode checks, ignoring case, whether a course code is taken.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error) {
	defer r.observe("courses.exists_by_code", time.Now())

	query := "SELECT 1 FROM courses WHERE LOWER(code) = LOWER($1)"
	args := []interface{}{code}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check course code: %w", err)
	}
	return true, nil
}

// Create inserts a course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	defer r.observe("courses.create", time.Now())

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now
	const query = `INSERT INTO courses (id, code, title, description, credits, active, created_at, updated_at)
        VALUES (:id, :code, :title, :description, :credits, :active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", translate(err))
	}
	return nil
}

// Update modifies an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	defer r.observe("courses.update", time.Now())

	course.UpdatedAt = time.Now().UTC()
	const query = `UPDATE courses SET code = :code, title = :title, description = :description, credits = :credits, active = :active, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		return fmt.Errorf("update course: %w", translate(err))
	}
	return expectAffected(res)
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	defer r.observe("courses.delete", time.Now())

	res, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete course: %w", translate(err))
	}
	return expectAffected(res)
}
