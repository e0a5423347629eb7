package models

// AttendanceStatus defines the possible status values for a student's daily attendance.
type AttendanceStatus string

const (
	Present       AttendanceStatus = "present"
	Absent        AttendanceStatus = "absent"
	TeacherAbsent AttendanceStatus = "teacher_absent"
)

// Valid returns true when the status is one of the supported values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, TeacherAbsent:
		return true
	default:
		return false
	}
}

// Label returns the display label for a status. Unknown codes pass through
// unchanged so stale upstream data never breaks the display path.
func (s AttendanceStatus) Label() string {
	switch s {
	case Present:
		return "Có mặt"
	case Absent:
		return "Vắng mặt"
	case TeacherAbsent:
		return "GV nghỉ"
	default:
		return string(s)
	}
}

// FeeCalculationMethod defines how tuition is computed: per individual session
// or per whole billing cycle.
type FeeCalculationMethod string

const (
	PerSession FeeCalculationMethod = "PER_SESSION"
	PerCycle   FeeCalculationMethod = "PER_CYCLE"
)

// PaymentStatus defines the status of a tuition payment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)
