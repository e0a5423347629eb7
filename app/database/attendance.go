package database

import (
	"database/sql"
	"time"

	"tuition-center/app/models"
)

// AttendanceRepo implements attendance.Repository on Postgres. The unique
// constraint on (student_id, date) makes Save last-write-wins without any
// check-then-act in application code.
type AttendanceRepo struct {
	DB *sql.DB
}

// Save upserts one attendance record keyed by (student_id, date).
func (r *AttendanceRepo) Save(record *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, date, status)
			  VALUES ($1, $2, $3)
			  ON CONFLICT ON CONSTRAINT attendance_student_date_key
			  DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return r.DB.QueryRow(query, record.StudentID, record.Date, string(record.Status)).Scan(
		&record.ID, &record.CreatedAt, &record.UpdatedAt,
	)
}

// GetAttendanceByClassAndDate returns the attendance records of one class for
// one day.
func GetAttendanceByClassAndDate(db *sql.DB, classID string, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.date, a.status, a.created_at, a.updated_at
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  WHERE s.class_id = $1 AND a.date = $2
			  ORDER BY s.name`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record := &models.Attendance{}
		var status string
		err := rows.Scan(&record.ID, &record.StudentID, &record.Date, &status, &record.CreatedAt, &record.UpdatedAt)
		if err != nil {
			continue
		}
		record.Status = models.AttendanceStatus(status)
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetStudentAttendanceSummary aggregates a student's attendance counts from a
// given date (inclusive). TeacherAbsent days are counted separately because
// they do not consume a paid session.
func GetStudentAttendanceSummary(db *sql.DB, studentID string, from time.Time) (*models.AttendanceSummary, error) {
	query := `SELECT
			  COUNT(*) FILTER (WHERE status = 'present'),
			  COUNT(*) FILTER (WHERE status = 'absent'),
			  COUNT(*) FILTER (WHERE status = 'teacher_absent'),
			  COUNT(*)
			  FROM attendance
			  WHERE student_id = $1 AND date >= $2`

	summary := &models.AttendanceSummary{}
	err := db.QueryRow(query, studentID, from).Scan(
		&summary.Present, &summary.Absent, &summary.TeacherAbsent, &summary.Total,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// CountCompletedSessions returns how many sessions a student attended since
// from (inclusive). Only 'present' days count toward a session-based cycle.
func CountCompletedSessions(db *sql.DB, studentID string, from time.Time) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM attendance WHERE student_id = $1 AND date >= $2 AND status = 'present'`,
		studentID, from,
	).Scan(&count)
	return count, err
}
