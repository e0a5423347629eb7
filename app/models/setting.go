package models

import "time"

// Setting is a single key/value configuration row. Keys are unique; the
// fee-calculation policy lives under one well-known key (see app/settings).
type Setting struct {
	ID          string    `json:"id"`
	Key         string    `json:"key" validate:"required,min=1,max=100"`
	Value       string    `json:"value" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
