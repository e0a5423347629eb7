// Package attendance marks a student's daily attendance and delegates
// persistence to a repository collaborator.
package attendance

import (
	"fmt"
	"time"

	"tuition-center/app/models"
)

// Repository persists attendance records. Save must upsert by
// (student_id, date) so re-marking the same day is last-write-wins; the SQL
// implementation enforces this with a unique constraint.
type Repository interface {
	Save(record *models.Attendance) error
}

// ErrInvalidStatus is returned when Mark is called with an unrecognized
// attendance status. This is a caller programming error and is reported
// before any persistence call is attempted.
type ErrInvalidStatus struct {
	Status models.AttendanceStatus
}

func (e ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid attendance status %q: must be %s, %s or %s",
		e.Status, models.Present, models.Absent, models.TeacherAbsent)
}

// Recorder marks one student's attendance for one day.
type Recorder struct {
	repo Repository
}

// NewRecorder returns a Recorder backed by repo.
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Mark records status for studentID on day. The date is truncated to day
// granularity before it becomes part of the (student, date) key. Persistence
// failures propagate with their original message.
func (r *Recorder) Mark(studentID string, status models.AttendanceStatus, day time.Time) (*models.Attendance, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus{Status: status}
	}

	record := &models.Attendance{
		StudentID: studentID,
		Date:      TruncateToDay(day),
		Status:    status,
	}
	if err := r.repo.Save(record); err != nil {
		return nil, err
	}
	return record, nil
}

// TruncateToDay drops the time-of-day component, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
