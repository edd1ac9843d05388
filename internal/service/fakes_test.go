package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/student-management-api/internal/models"
	"github.com/noah-isme/student-management-api/internal/repository"
)

const (
	studentUUID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	courseUUID  = "1b4e28ba-2fa1-41d2-883f-0016d3cca427"
	course2UUID = "6fa459ea-ee8a-4ca4-894e-db77e160355e"
	enrollUUID  = "16fd2706-8baf-433b-82eb-8c7fada847da"
	unknownUUID = "00000000-0000-4000-8000-000000000000"
)

type fakeStudentRepo struct {
	students map[string]models.Student
	seq      int
	err      error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]models.Student)}
}

func (f *fakeStudentRepo) Search(ctx context.Context, filter models.StudentFilter, page models.PageRequest) ([]models.Student, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	var matched []models.Student
	for _, s := range f.students {
		if q != "" && !strings.Contains(strings.ToLower(s.FirstName), q) &&
			!strings.Contains(strings.ToLower(s.LastName), q) &&
			!strings.Contains(strings.ToLower(s.Email), q) {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		matched = append(matched, s)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return paginate(matched, page), int64(len(matched)), nil
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &s, nil
}

func (f *fakeStudentRepo) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	for id, s := range f.students {
		if strings.EqualFold(s.Email, email) && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	f.seq++
	student.ID = fmt.Sprintf("student-%d", f.seq)
	student.CreatedAt = time.Now().UTC()
	student.UpdatedAt = student.CreatedAt
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return sql.ErrNoRows
	}
	student.UpdatedAt = time.Now().UTC()
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.students[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.students, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[string]models.Course
	seq     int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]models.Course)}
}

func (f *fakeCourseRepo) Search(ctx context.Context, filter models.CourseFilter, page models.PageRequest) ([]models.Course, int64, error) {
	for _, order := range page.Sort {
		if order.Field == "secret" {
			return nil, 0, fmt.Errorf("%w: %s", repository.ErrInvalidSort, order.Field)
		}
	}
	q := strings.ToLower(filter.Query)
	var matched []models.Course
	for _, c := range f.courses {
		if q != "" && !strings.Contains(strings.ToLower(c.Code), q) && !strings.Contains(strings.ToLower(c.Title), q) {
			continue
		}
		if filter.Active != nil && c.Active != *filter.Active {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Code < matched[j].Code })
	return paginate(matched, page), int64(len(matched)), nil
}

func (f *fakeCourseRepo) FindByID(ctx context.Context, id string) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (f *fakeCourseRepo) ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error) {
	for id, c := range f.courses {
		if strings.EqualFold(c.Code, code) && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	f.seq++
	course.ID = fmt.Sprintf("course-%d", f.seq)
	course.CreatedAt = time.Now().UTC()
	course.UpdatedAt = course.CreatedAt
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return sql.ErrNoRows
	}
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.courses, id)
	return nil
}

// fakeEnrollmentRepo rejects creates whose student or course id is listed in missing,
// the way the foreign keys do.
type fakeEnrollmentRepo struct {
	enrollments map[string]models.Enrollment
	missing     map[string]bool
	seq         int
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[string]models.Enrollment), missing: make(map[string]bool)}
}

func (f *fakeEnrollmentRepo) add(id, studentID, courseID, term, section string) {
	f.enrollments[id] = models.Enrollment{
		BaseEntity: models.BaseEntity{ID: id, CreatedAt: time.Now().UTC()},
		Student:    models.StudentRef(studentID),
		Course:     models.CourseRef(courseID),
		Term:       term,
		Section:    section,
		Status:     models.EnrollmentStatusRegistered,
	}
}

func (f *fakeEnrollmentRepo) Search(ctx context.Context, filter models.EnrollmentFilter, page models.PageRequest) ([]models.Enrollment, int64, error) {
	var matched []models.Enrollment
	for _, e := range f.enrollments {
		if filter.StudentID != "" && e.StudentID() != filter.StudentID {
			continue
		}
		if filter.CourseID != "" && e.CourseID() != filter.CourseID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Term != "" && !strings.Contains(strings.ToLower(e.Term), strings.ToLower(filter.Term)) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return paginate(matched, page), int64(len(matched)), nil
}

func (f *fakeEnrollmentRepo) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	e, ok := f.enrollments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (f *fakeEnrollmentRepo) ExistsByOffering(ctx context.Context, studentID, courseID, term, section, excludeID string) (bool, error) {
	for id, e := range f.enrollments {
		if id != excludeID && e.StudentID() == studentID && e.CourseID() == courseID && e.Term == term && e.Section == section {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentRepo) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	for _, e := range f.enrollments {
		if e.StudentID() == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentRepo) ExistsByCourseID(ctx context.Context, courseID string) (bool, error) {
	for _, e := range f.enrollments {
		if e.CourseID() == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if f.missing[enrollment.StudentID()] || f.missing[enrollment.CourseID()] {
		return fmt.Errorf("create enrollment: %w", repository.ErrForeignKey)
	}
	f.seq++
	enrollment.ID = fmt.Sprintf("enrollment-%d", f.seq)
	enrollment.CreatedAt = time.Now().UTC()
	enrollment.UpdatedAt = enrollment.CreatedAt
	f.enrollments[enrollment.ID] = *enrollment
	return nil
}

func (f *fakeEnrollmentRepo) Update(ctx context.Context, enrollment *models.Enrollment) error {
	if _, ok := f.enrollments[enrollment.ID]; !ok {
		return sql.ErrNoRows
	}
	f.enrollments[enrollment.ID] = *enrollment
	return nil
}

type fakeGradeRepo struct {
	grades  map[string]models.Grade
	missing map[string]bool
	seq     int
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{grades: make(map[string]models.Grade), missing: make(map[string]bool)}
}

func (f *fakeGradeRepo) Search(ctx context.Context, filter models.GradeFilter, page models.PageRequest) ([]models.Grade, int64, error) {
	var matched []models.Grade
	for _, g := range f.grades {
		if filter.EnrollmentID != "" && g.EnrollmentID() != filter.EnrollmentID {
			continue
		}
		if filter.Letter != "" && !strings.EqualFold(g.Letter, filter.Letter) {
			continue
		}
		matched = append(matched, g)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return paginate(matched, page), int64(len(matched)), nil
}

func (f *fakeGradeRepo) FindByID(ctx context.Context, id string) (*models.Grade, error) {
	g, ok := f.grades[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &g, nil
}

func (f *fakeGradeRepo) FindLatestByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Grade, error) {
	var latest *models.Grade
	for _, g := range f.grades {
		g := g
		if g.EnrollmentID() != enrollmentID {
			continue
		}
		if latest == nil || g.GradedAt.After(latest.GradedAt) {
			latest = &g
		}
	}
	if latest == nil {
		return nil, sql.ErrNoRows
	}
	return latest, nil
}

func (f *fakeGradeRepo) Create(ctx context.Context, grade *models.Grade) error {
	if f.missing[grade.EnrollmentID()] {
		return fmt.Errorf("create grade: %w", repository.ErrForeignKey)
	}
	f.seq++
	grade.ID = fmt.Sprintf("grade-%d", f.seq)
	grade.CreatedAt = time.Now().UTC()
	grade.UpdatedAt = grade.CreatedAt
	f.grades[grade.ID] = *grade
	return nil
}

func (f *fakeGradeRepo) Update(ctx context.Context, grade *models.Grade) error {
	if _, ok := f.grades[grade.ID]; !ok {
		return sql.ErrNoRows
	}
	f.grades[grade.ID] = *grade
	return nil
}

type countingRecorder struct {
	calls []string
}

func (r *countingRecorder) RecordMutation(entity, operation string) {
	r.calls = append(r.calls, entity+"."+operation)
}

func paginate[T any](items []T, page models.PageRequest) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
