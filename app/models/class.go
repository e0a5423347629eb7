package models

import "time"

// Class represents a tuition class with its weekly schedule and fee.
// Schedule is free text entered by staff, e.g. "Thứ 2, Thứ 4, Thứ 6 (18h-19h30)";
// matching against a calendar day is done by app/schedule, not by parsing here.
type Class struct {
	ID        string    `json:"id" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Schedule  string    `json:"schedule" validate:"required"`
	Fee       int64     `json:"fee" validate:"gte=0"`
	CycleType string    `json:"cycle_type" validate:"required"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentCount int `json:"student_count,omitempty"`
}
