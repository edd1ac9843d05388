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

const studentColumns = "id, first_name, last_name, email, gender, birth_date, status, created_at, updated_at, deleted_at"

var studentSortColumns = sortColumns(map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"birthDate": "birth_date",
	"status":    "status",
})

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
	queryTimer
}

// NewStudentRepository constructs a StudentRepository. observer may be nil.
func NewStudentRepository(db *sqlx.DB, observer QueryObserver) *StudentRepository {
	return &StudentRepository{db: db, queryTimer: queryTimer{observer: observer}}
}

// Search returns one page of students matching the filter and the total match count.
// Query matches first name, last name or email case-insensitively.
func (r *StudentRepository) Search(ctx context.Context, filter models.StudentFilter, page models.PageRequest) ([]models.Student, int64, error) {
	defer r.observe("students.search", time.Now())

	args := []interface{}{}
	conditions := []string{"1=1"}
	if q := strings.TrimSpace(filter.Query); q != "" {
		n := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(first_name) LIKE $%d OR LOWER(last_name) LIKE $%d OR LOWER(email) LIKE $%d)", n, n, n))
		args = append(args, containsPattern(q))
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	clause, err := pageClause(page, studentSortColumns)
	if err != nil {
		return nil, 0, err
	}

	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, "SELECT "+studentColumns+" FROM students"+where+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("search students: %w", err)
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// FindByID fetches a student by ID. sql.ErrNoRows is returned unwrapped when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	defer r.observe("students.find_by_id", time.Now())

	var student models.Student
	if err := r.db.GetContext(ctx, &student, "SELECT "+studentColumns+" FROM students WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByEmail checks, ignoring case, whether a student uses email, optionally excluding an ID.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	defer r.observe("students.exists_by_email", time.Now())

	query := "SELECT 1 FROM students WHERE LOWER(email) = LOWER($1)"
	args := []interface{}{email}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check student email: %w", err)
	}
	return true, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	defer r.observe("students.create", time.Now())

	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	const query = `INSERT INTO students (id, first_name, last_name, email, gender, birth_date, status, created_at, updated_at)
        VALUES (:id, :first_name, :last_name, :email, :gender, :birth_date, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", translate(err))
	}
	return nil
}

// Update modifies an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	defer r.observe("students.update", time.Now())

	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET first_name = :first_name, last_name = :last_name, email = :email, gender = :gender, birth_date = :birth_date, status = :status, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("update student: %w", translate(err))
	}
	return expectAffected(res)
}

// Delete removes a student. Referencing enrollments make it fail with ErrForeignKey.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	defer r.observe("students.delete", time.Now())

	res, err := r.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete student: %w", translate(err))
	}
	return expectAffected(res)
}

// expectAffected turns a statement that touched no row into sql.ErrNoRows.
func expectAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
