package models

// Gender of a student record.
type Gender string

// Supported genders.
const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// StudentStatus is the lifecycle status of a student. No transition order is enforced.
type StudentStatus string

// Student statuses, in their usual lifecycle order.
const (
	StudentStatusApplied   StudentStatus = "APPLIED"
	StudentStatusAdmitted  StudentStatus = "ADMITTED"
	StudentStatusEnrolled  StudentStatus = "ENROLLED"
	StudentStatusOnLeave   StudentStatus = "ON_LEAVE"
	StudentStatusSuspended StudentStatus = "SUSPENDED"
	StudentStatusWithdrawn StudentStatus = "WITHDRAWN"
	StudentStatusGraduated StudentStatus = "GRADUATED"
	StudentStatusInactive  StudentStatus = "INACTIVE"
)

// StudentStatuses lists every student status.
var StudentStatuses = []StudentStatus{
	StudentStatusApplied,
	StudentStatusAdmitted,
	StudentStatusEnrolled,
	StudentStatusOnLeave,
	StudentStatusSuspended,
	StudentStatusWithdrawn,
	StudentStatusGraduated,
	StudentStatusInactive,
}

// Valid reports whether s is a known status.
func (s StudentStatus) Valid() bool {
	for _, status := range StudentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Student represents a learner registered in the institution.
type Student struct {
	BaseEntity
	FirstName string        `db:"first_name"`
	LastName  string        `db:"last_name"`
	Email     string        `db:"email"`
	Gender    Gender        `db:"gender"`
	BirthDate Date          `db:"birth_date"`
	Status    StudentStatus `db:"status"`
}

// Equal reports whether both values denote the same persisted student.
func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return false
	}
	return s.sameIdentity(other.BaseEntity)
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Query  string
	Status StudentStatus
}
