package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// GradeCreateRequest records a grade for an enrollment. GradedAt defaults to now.
type GradeCreateRequest struct {
	EnrollmentID string           `json:"enrollmentId" validate:"required,uuid"`
	Letter       string           `json:"letter" validate:"notblank,max=2"`
	Points       *decimal.Decimal `json:"points" validate:"required,points"`
	GradedAt     *time.Time       `json:"gradedAt,omitempty"`
	Notes        *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// GradeUpdateRequest replaces the mutable grade fields. A nil GradedAt keeps the
// recorded timestamp.
type GradeUpdateRequest struct {
	Letter   string           `json:"letter" validate:"notblank,max=2"`
	Points   *decimal.Decimal `json:"points" validate:"required,points"`
	GradedAt *time.Time       `json:"gradedAt,omitempty"`
	Notes    *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// GradeResponse is the outbound grade shape. Points always carry two fraction digits.
type GradeResponse struct {
	ID           string      `json:"id"`
	EnrollmentID string      `json:"enrollmentId"`
	Letter       string      `json:"letter"`
	Points       json.Number `json:"points"`
	GradedAt     time.Time   `json:"gradedAt"`
	Notes        *string     `json:"notes"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
