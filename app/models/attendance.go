package models

import "time"

// Attendance represents a student's attendance for one calendar day.
// At most one record exists per (student_id, date); the database enforces
// this with a unique constraint and writes are last-write-wins.
type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id" validate:"required,uuid"`
	Date      time.Time        `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent teacher_absent"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// StatusLabel returns the display label for the record's status.
func (a *Attendance) StatusLabel() string {
	return a.Status.Label()
}

// AttendanceSummary aggregates a student's attendance counts.
// TeacherAbsent days are tracked separately because they do not count
// against the student's completed sessions.
type AttendanceSummary struct {
	Present       int `json:"present"`
	Absent        int `json:"absent"`
	TeacherAbsent int `json:"teacher_absent"`
	Total         int `json:"total"`
}
