package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if needed and applies incremental updates.
// Every statement is idempotent so the app can run it on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	migrations := []struct {
		name  string
		query string
	}{
		{"pgcrypto extension", `CREATE EXTENSION IF NOT EXISTS pgcrypto`},
		{"classes table", `
			CREATE TABLE IF NOT EXISTS classes (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL,
				schedule TEXT NOT NULL DEFAULT '',
				fee BIGINT NOT NULL DEFAULT 0,
				cycle_type VARCHAR(20) NOT NULL DEFAULT 'monthly',
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"students table", `
			CREATE TABLE IF NOT EXISTS students (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL,
				phone VARCHAR(20) NOT NULL DEFAULT '',
				class_id UUID NOT NULL REFERENCES classes(id),
				enrolled_at DATE NOT NULL DEFAULT CURRENT_DATE,
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"students class index", `CREATE INDEX IF NOT EXISTS idx_students_class_id ON students(class_id)`},
		{"attendance table", `
			CREATE TABLE IF NOT EXISTS attendance (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				student_id UUID NOT NULL REFERENCES students(id),
				date DATE NOT NULL,
				status VARCHAR(20) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT attendance_student_date_key UNIQUE (student_id, date)
			)`},
		{"attendance date index", `CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date)`},
		{"payments table", `
			CREATE TABLE IF NOT EXISTS payments (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				student_id UUID NOT NULL REFERENCES students(id),
				amount BIGINT NOT NULL,
				cycle_start DATE NOT NULL,
				cycle_end DATE NOT NULL,
				cycle_type VARCHAR(20) NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'paid',
				paid_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"payments student index", `CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`},
		{"settings table", `
			CREATE TABLE IF NOT EXISTS settings (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				key VARCHAR(100) NOT NULL,
				value TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT settings_key_key UNIQUE (key)
			)`},
	}

	for _, m := range migrations {
		if _, err := db.Exec(m.query); err != nil {
			log.Printf("Failed to run migration %q: %v", m.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
