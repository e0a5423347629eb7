package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition-center/app/models"
)

// memRepo upserts by (student_id, date), matching the database's unique
// constraint semantics.
type memRepo struct {
	rows     map[string]*models.Attendance
	saves    int
	failWith error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]*models.Attendance)}
}

func (r *memRepo) Save(record *models.Attendance) error {
	r.saves++
	if r.failWith != nil {
		return r.failWith
	}
	key := record.StudentID + "|" + record.Date.Format("2006-01-02")
	if existing, ok := r.rows[key]; ok {
		existing.Status = record.Status
		record.ID = existing.ID
		return nil
	}
	record.ID = key
	r.rows[key] = record
	return nil
}

func TestMark(t *testing.T) {
	repo := newMemRepo()
	rec := NewRecorder(repo)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	record, err := rec.Mark("student-5", models.Present, day)
	require.NoError(t, err)
	assert.Equal(t, "student-5", record.StudentID)
	assert.Equal(t, models.Present, record.Status)
	assert.True(t, record.Date.Equal(day))
	assert.Len(t, repo.rows, 1)
}

func TestMarkTruncatesTimeOfDay(t *testing.T) {
	repo := newMemRepo()
	rec := NewRecorder(repo)

	record, err := rec.Mark("student-5", models.Absent, time.Date(2024, 3, 1, 18, 45, 12, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, record.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		"date must be stored at day granularity, got %s", record.Date)
}

func TestMarkRemarkIsLastWriteWins(t *testing.T) {
	repo := newMemRepo()
	rec := NewRecorder(repo)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := rec.Mark("student-5", models.Present, day)
	require.NoError(t, err)
	// Same student, same day, different time of day.
	_, err = rec.Mark("student-5", models.Absent, day.Add(6*time.Hour))
	require.NoError(t, err)

	require.Len(t, repo.rows, 1, "remarking the same (student, date) must not create a second record")
	assert.Equal(t, models.Absent, repo.rows["student-5|2024-03-01"].Status)
}

func TestMarkInvalidStatusFailsBeforePersistence(t *testing.T) {
	repo := newMemRepo()
	rec := NewRecorder(repo)

	_, err := rec.Mark("student-5", "unknown", time.Now())
	require.Error(t, err)
	var invalid ErrInvalidStatus
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, repo.saves, "invalid status must be rejected before any save is attempted")
}

func TestMarkTeacherAbsentIsValid(t *testing.T) {
	rec := NewRecorder(newMemRepo())
	record, err := rec.Mark("student-5", models.TeacherAbsent, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.TeacherAbsent, record.Status)
}

func TestMarkRepositoryFailurePropagates(t *testing.T) {
	repo := newMemRepo()
	boom := errors.New("pq: connection reset")
	repo.failWith = boom

	rec := NewRecorder(repo)
	_, err := rec.Mark("student-5", models.Present, time.Now())
	assert.ErrorIs(t, err, boom, "persistence errors must propagate with their original message")
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Có mặt", models.Present.Label())
	assert.Equal(t, "Vắng mặt", models.Absent.Label())
	assert.Equal(t, "GV nghỉ", models.TeacherAbsent.Label())
	assert.Equal(t, "mystery", models.AttendanceStatus("mystery").Label(),
		"unknown codes pass through for display")
}
