package mapper

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/student-management-api/internal/dto"
	"github.com/noah-isme/student-management-api/internal/models"
)

// Verify runs every mapper over fully populated samples and reports any entity or
// response field left at its zero value. A failure means a field was added without
// being mapped; the binary refuses to start on it.
func Verify() error {
	now := time.Now().UTC()
	base := models.BaseEntity{ID: "verify", CreatedAt: now, UpdatedAt: now}
	description, notes := "sample", "sample"
	credits, active := 3, true
	points := decimal.RequireFromString("3.50")
	birthDate := models.NewDate(2000, time.January, 2)
	studentID, courseID, enrollmentID := "verify-student", "verify-course", "verify-enrollment"

	var problems []string

	student := StudentFromCreate(dto.StudentCreateRequest{
		FirstName: "a", LastName: "b", Email: "c@d.e", Gender: models.GenderOther,
		BirthDate: birthDate, Status: models.StudentStatusAdmitted,
	})
	problems = append(problems, zeroFields("Student", *student, "BaseEntity")...)
	student.BaseEntity = base
	problems = append(problems, zeroFields("StudentResponse", StudentToResponse(student))...)
	updatedStudent := &models.Student{}
	UpdateStudent(updatedStudent, dto.StudentUpdateRequest{
		FirstName: "a", LastName: "b", Email: "c@d.e", Gender: models.GenderOther,
		BirthDate: birthDate, Status: models.StudentStatusAdmitted,
	})
	problems = append(problems, zeroFields("UpdateStudent", *updatedStudent, "BaseEntity")...)

	course := CourseFromCreate(dto.CourseCreateRequest{
		Code: "X1", Title: "t", Description: &description, Credits: &credits, Active: &active,
	})
	problems = append(problems, zeroFields("Course", *course, "BaseEntity")...)
	course.BaseEntity = base
	problems = append(problems, zeroFields("CourseResponse", CourseToResponse(course))...)
	updatedCourse := &models.Course{}
	UpdateCourse(updatedCourse, dto.CourseUpdateRequest{
		Code: "X1", Title: "t", Description: &description, Credits: &credits, Active: &active,
	})
	problems = append(problems, zeroFields("UpdateCourse", *updatedCourse, "BaseEntity")...)

	enrollment := EnrollmentFromCreate(dto.EnrollmentCreateRequest{
		StudentID: studentID, CourseID: courseID, Term: "t", Section: "s", Status: models.EnrollmentStatusEnrolled,
	})
	problems = append(problems, zeroFields("Enrollment", *enrollment, "BaseEntity")...)
	enrollment.BaseEntity = base
	problems = append(problems, zeroFields("EnrollmentResponse", EnrollmentToResponse(enrollment))...)
	updatedEnrollment := &models.Enrollment{}
	UpdateEnrollment(updatedEnrollment, dto.EnrollmentUpdateRequest{Term: "t", Section: "s", Status: models.EnrollmentStatusEnrolled})
	problems = append(problems, zeroFields("UpdateEnrollment", *updatedEnrollment, "BaseEntity", "Student", "Course")...)

	grade := GradeFromCreate(dto.GradeCreateRequest{
		EnrollmentID: enrollmentID, Letter: "A", Points: &points, GradedAt: &now, Notes: &notes,
	})
	problems = append(problems, zeroFields("Grade", *grade, "BaseEntity")...)
	grade.BaseEntity = base
	problems = append(problems, zeroFields("GradeResponse", GradeToResponse(grade))...)
	updatedGrade := &models.Grade{}
	UpdateGrade(updatedGrade, dto.GradeUpdateRequest{Letter: "A", Points: &points, GradedAt: &now, Notes: &notes})
	problems = append(problems, zeroFields("UpdateGrade", *updatedGrade, "BaseEntity", "Enrollment")...)

	if len(problems) > 0 {
		return fmt.Errorf("unmapped fields: %s", strings.Join(problems, ", "))
	}
	return nil
}

// zeroFields lists the exported top-level fields of v still holding their zero value.
func zeroFields(name string, v interface{}, skip ...string) []string {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	var zero []string
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() || contains(skip, field.Name) {
			continue
		}
		if rv.Field(i).IsZero() {
			zero = append(zero, name+"."+field.Name)
		}
	}
	return zero
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
