package dto

import "time"

// CourseCreateRequest holds payload for creating courses. Active defaults to true.
type CourseCreateRequest struct {
	Code        string  `json:"code" validate:"notblank,max=20"`
	Title       string  `json:"title" validate:"notblank,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Credits     *int    `json:"credits" validate:"required,min=0,max=30"`
	Active      *bool   `json:"active,omitempty"`
}

// CourseUpdateRequest is a full replacement of the mutable course fields.
type CourseUpdateRequest struct {
	Code        string  `json:"code" validate:"notblank,max=20"`
	Title       string  `json:"title" validate:"notblank,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Credits     *int    `json:"credits" validate:"required,min=0,max=30"`
	Active      *bool   `json:"active" validate:"required"`
}

// CourseResponse is the outbound course shape.
type CourseResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Credits     int       `json:"credits"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
