package models

import "strings"

// StudentRef returns an id-only Student usable as a foreign-key reference, or nil
// when id is blank. It never touches the store.
func StudentRef(id string) *Student {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &Student{BaseEntity: BaseEntity{ID: id}}
}

// CourseRef returns an id-only Course reference, or nil when id is blank.
func CourseRef(id string) *Course {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &Course{BaseEntity: BaseEntity{ID: id}}
}

// EnrollmentRef returns an id-only Enrollment reference, or nil when id is blank.
func EnrollmentRef(id string) *Enrollment {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &Enrollment{BaseEntity: BaseEntity{ID: id}}
}
