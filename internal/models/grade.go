package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grade points bounds, inclusive.
var (
	MinGradePoints = decimal.NewFromInt(0)
	MaxGradePoints = decimal.NewFromInt(6)
)

// GradePointsScale is the number of fraction digits stored for points.
const GradePointsScale = 2

// Grade is the mark awarded for an enrollment.
type Grade struct {
	BaseEntity
	Enrollment *Enrollment
	Letter     string
	Points     decimal.Decimal
	GradedAt   time.Time
	Notes      *string
}

// EnrollmentID returns the referenced enrollment's id.
func (g *Grade) EnrollmentID() string {
	if g == nil || g.Enrollment == nil {
		return ""
	}
	return g.Enrollment.ID
}

// Equal reports whether both values denote the same persisted grade.
func (g *Grade) Equal(other *Grade) bool {
	if g == nil || other == nil {
		return false
	}
	return g.sameIdentity(other.BaseEntity)
}

// GradeFilter allows querying of grade entries.
type GradeFilter struct {
	EnrollmentID string
	Letter       string
}
