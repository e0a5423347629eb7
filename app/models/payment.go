package models

import "time"

// Payment represents a tuition payment opening a billing cycle for a student.
// CycleEnd is computed from CycleStart and CycleType at write time (app/billing)
// and stored for querying; it is never mutated afterwards, only recomputed.
type Payment struct {
	ID         string        `json:"id"`
	StudentID  string        `json:"student_id" validate:"required,uuid"`
	Amount     int64         `json:"amount" validate:"required,gt=0"`
	CycleStart time.Time     `json:"cycle_start" validate:"required"`
	CycleEnd   time.Time     `json:"cycle_end"`
	CycleType  string        `json:"cycle_type" validate:"required"`
	Status     PaymentStatus `json:"status"`
	PaidAt     time.Time     `json:"paid_at"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Student *Student `json:"student,omitempty"`
}
