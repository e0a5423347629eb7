package database

import (
	"database/sql"
	"fmt"
	"time"

	"tuition-center/app/models"
)

// CreatePayment records a payment. CycleEnd must already be computed by the
// caller (app/billing); this layer only stores it.
func CreatePayment(db *sql.DB, payment *models.Payment) error {
	query := `INSERT INTO payments (student_id, amount, cycle_start, cycle_end, cycle_type, status, paid_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW())
			  RETURNING id, paid_at, created_at, updated_at`

	err := db.QueryRow(query,
		payment.StudentID, payment.Amount, payment.CycleStart, payment.CycleEnd,
		payment.CycleType, string(payment.Status),
	).Scan(&payment.ID, &payment.PaidAt, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}
	return nil
}

// GetPaymentsByStudent retrieves all payments for one student, newest first.
func GetPaymentsByStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT id, student_id, amount, cycle_start, cycle_end, cycle_type, status, paid_at, created_at, updated_at
			  FROM payments
			  WHERE student_id = $1
			  ORDER BY cycle_start DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			continue
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// GetLatestPaymentByStudent returns the student's most recent payment by
// cycle start, or nil when the student has never paid.
func GetLatestPaymentByStudent(db *sql.DB, studentID string) (*models.Payment, error) {
	query := `SELECT id, student_id, amount, cycle_start, cycle_end, cycle_type, status, paid_at, created_at, updated_at
			  FROM payments
			  WHERE student_id = $1
			  ORDER BY cycle_start DESC
			  LIMIT 1`

	p := &models.Payment{}
	var status string
	err := db.QueryRow(query, studentID).Scan(
		&p.ID, &p.StudentID, &p.Amount, &p.CycleStart, &p.CycleEnd,
		&p.CycleType, &status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	return p, nil
}

// MarkExpiredPaymentsOverdue flags each student's latest payment as overdue
// once its cycle end has passed. Returns the number of rows updated.
func MarkExpiredPaymentsOverdue(db *sql.DB, asOf time.Time) (int64, error) {
	query := `UPDATE payments p
			  SET status = 'overdue', updated_at = NOW()
			  WHERE p.status = 'paid'
			  AND p.cycle_end < $1
			  AND NOT EXISTS (
				  SELECT 1 FROM payments newer
				  WHERE newer.student_id = p.student_id
				  AND newer.cycle_start > p.cycle_start
			  )`

	result, err := db.Exec(query, asOf)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	p := &models.Payment{}
	var status string
	err := row.Scan(
		&p.ID, &p.StudentID, &p.Amount, &p.CycleStart, &p.CycleEnd,
		&p.CycleType, &status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	return p, nil
}
