package models

// Course is an offering in the catalogue. Active=false retires it without deleting.
type Course struct {
	BaseEntity
	Code        string  `db:"code"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Credits     int     `db:"credits"`
	Active      bool    `db:"active"`
}

// Equal reports whether both values denote the same persisted course.
func (c *Course) Equal(other *Course) bool {
	if c == nil || other == nil {
		return false
	}
	return c.sameIdentity(other.BaseEntity)
}

// CourseFilter captures supported filters for listing courses.
type CourseFilter struct {
	Query  string
	Active *bool
}
