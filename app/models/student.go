package models

import "time"

// Student represents a student enrolled at the center.
type Student struct {
	ID         string    `json:"id" validate:"omitempty,uuid"`
	Name       string    `json:"name" validate:"required,min=2,max=100"`
	Phone      string    `json:"phone" validate:"omitempty,max=20"`
	ClassID    string    `json:"class_id" validate:"required,uuid"`
	EnrolledAt time.Time `json:"enrolled_at"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Class *Class `json:"class,omitempty"`
}
