package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-management-api/internal/models"
)

var enrollmentRowColumns = []string{"id", "student_id", "course_id", "term", "section", "status", "created_at", "updated_at", "deleted_at"}

func TestEnrollmentRepositorySearchHydratesReferences(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db, nil)

	now := time.Now()
	where := " WHERE 1=1 AND student_id = $1 AND status = $2"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+enrollmentColumns+" FROM enrollments"+where+" ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WithArgs("s-1", models.EnrollmentStatusRegistered).
		WillReturnRows(sqlmock.NewRows(enrollmentRowColumns).AddRow("e-1", "s-1", "c-1", "2024F", "A", "REGISTERED", now, now, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM enrollments"+where)).
		WithArgs("s-1", models.EnrollmentStatusRegistered).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	enrollments, total, err := repo.Search(context.Background(), models.EnrollmentFilter{StudentID: "s-1", Status: models.EnrollmentStatusRegistered}, models.PageRequest{})
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "s-1", enrollments[0].StudentID())
	assert.Equal(t, "c-1", enrollments[0].CourseID())
	assert.Equal(t, "2024F", enrollments[0].Term)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryExistsByOffering(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db, nil)

	base := "SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2 AND term = $3 AND section = $4"
	mock.ExpectQuery(regexp.QuoteMeta(base+" LIMIT 1")).
		WithArgs("s-1", "c-1", "2024F", "A").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(base+" AND id <> $5 LIMIT 1")).
		WithArgs("s-1", "c-1", "2024F", "A", "e-1").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByOffering(context.Background(), "s-1", "c-1", "2024F", "A", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByOffering(context.Background(), "s-1", "c-1", "2024F", "A", "e-1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryDependents(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM enrollments WHERE student_id = $1 LIMIT 1")).
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM enrollments WHERE course_id = $1 LIMIT 1")).
		WithArgs("c-1").
		WillReturnError(sql.ErrNoRows)

	byStudent, err := repo.ExistsByStudentID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.True(t, byStudent)

	byCourse, err := repo.ExistsByCourseID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.False(t, byCourse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryCreateUnknownReference(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db, nil)

	mock.ExpectExec("INSERT INTO enrollments").
		WithArgs(sqlmock.AnyArg(), "s-404", "c-1", "2024F", "A", models.EnrollmentStatusRegistered, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "fk_enrollments_student"})

	enrollment := &models.Enrollment{Student: models.StudentRef("s-404"), Course: models.CourseRef("c-1"), Term: "2024F", Section: "A", Status: models.EnrollmentStatusRegistered}
	err := repo.Create(context.Background(), enrollment)
	assert.ErrorIs(t, err, ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryUpdateLeavesReferences(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db, nil)

	mock.ExpectExec("UPDATE enrollments SET term = \\?, section = \\?, status = \\?, updated_at = \\? WHERE id = \\?").
		WithArgs("2025S", "B", models.EnrollmentStatusDropped, sqlmock.AnyArg(), "e-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	enrollment := &models.Enrollment{BaseEntity: models.BaseEntity{ID: "e-1"}, Student: models.StudentRef("s-1"), Course: models.CourseRef("c-1"), Term: "2025S", Section: "B", Status: models.EnrollmentStatusDropped}
	require.NoError(t, repo.Update(context.Background(), enrollment))
	assert.False(t, enrollment.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
