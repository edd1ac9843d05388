package models

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusRegistered EnrollmentStatus = "REGISTERED"
	EnrollmentStatusEnrolled   EnrollmentStatus = "ENROLLED"
	EnrollmentStatusWaitlisted EnrollmentStatus = "WAITLISTED"
	EnrollmentStatusDropped    EnrollmentStatus = "DROPPED"
	EnrollmentStatusWithdrawn  EnrollmentStatus = "WITHDRAWN"
	EnrollmentStatusCompleted  EnrollmentStatus = "COMPLETED"
	EnrollmentStatusFailed     EnrollmentStatus = "FAILED"
	EnrollmentStatusIncomplete EnrollmentStatus = "INCOMPLETE"
	EnrollmentStatusCancelled  EnrollmentStatus = "CANCELLED"
)

// EnrollmentStatuses lists every enrollment status.
var EnrollmentStatuses = []EnrollmentStatus{
	EnrollmentStatusRegistered,
	EnrollmentStatusEnrolled,
	EnrollmentStatusWaitlisted,
	EnrollmentStatusDropped,
	EnrollmentStatusWithdrawn,
	EnrollmentStatusCompleted,
	EnrollmentStatusFailed,
	EnrollmentStatusIncomplete,
	EnrollmentStatusCancelled,
}

// Valid reports whether s is a known status.
func (s EnrollmentStatus) Valid() bool {
	for _, status := range EnrollmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Enrollment captures a student's registration in one offering of a course.
// Student and Course are fixed at creation.
type Enrollment struct {
	BaseEntity
	Student *Student
	Course  *Course
	Term    string
	Section string
	Status  EnrollmentStatus
}

// StudentID returns the referenced student's id.
func (e *Enrollment) StudentID() string {
	if e == nil || e.Student == nil {
		return ""
	}
	return e.Student.ID
}

// CourseID returns the referenced course's id.
func (e *Enrollment) CourseID() string {
	if e == nil || e.Course == nil {
		return ""
	}
	return e.Course.ID
}

// Equal reports whether both values denote the same persisted enrollment.
func (e *Enrollment) Equal(other *Enrollment) bool {
	if e == nil || other == nil {
		return false
	}
	return e.sameIdentity(other.BaseEntity)
}

// EnrollmentFilter provides filters for listing enrollments.
type EnrollmentFilter struct {
	StudentID string
	CourseID  string
	Term      string
	Status    EnrollmentStatus
}
