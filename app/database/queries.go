package database

import (
	"database/sql"
	"fmt"

	"tuition-center/app/models"
)

// GetAllClasses returns all active classes with their student counts.
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.schedule, c.fee, c.cycle_type, c.is_active, c.created_at, c.updated_at,
			  COALESCE(s.student_count, 0) AS student_count
			  FROM classes c
			  LEFT JOIN (
				  SELECT class_id, COUNT(*) AS student_count
				  FROM students
				  WHERE is_active = true
				  GROUP BY class_id
			  ) s ON c.id = s.class_id
			  WHERE c.is_active = true
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Name, &class.Schedule, &class.Fee, &class.CycleType,
			&class.IsActive, &class.CreatedAt, &class.UpdatedAt, &class.StudentCount,
		)
		if err != nil {
			continue
		}
		classes = append(classes, class)
	}

	return classes, rows.Err()
}

// GetClassByID retrieves a single active class.
func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	query := `SELECT id, name, schedule, fee, cycle_type, is_active, created_at, updated_at
			  FROM classes
			  WHERE id = $1 AND is_active = true`

	class := &models.Class{}
	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Schedule, &class.Fee, &class.CycleType,
		&class.IsActive, &class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("class not found")
		}
		return nil, err
	}
	return class, nil
}

// CreateClass inserts a new class and fills in the generated fields.
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, schedule, fee, cycle_type, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, is_active, created_at, updated_at`

	err := db.QueryRow(query, class.Name, class.Schedule, class.Fee, class.CycleType).Scan(
		&class.ID, &class.IsActive, &class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create class: %v", err)
	}
	return nil
}

// UpdateClass updates an existing class.
func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `UPDATE classes
			  SET name = $1, schedule = $2, fee = $3, cycle_type = $4, updated_at = NOW()
			  WHERE id = $5 AND is_active = true
			  RETURNING updated_at`

	err := db.QueryRow(query, class.Name, class.Schedule, class.Fee, class.CycleType, class.ID).Scan(&class.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("class not found")
		}
		return fmt.Errorf("failed to update class: %v", err)
	}
	return nil
}

// DeleteClass soft deletes a class (sets is_active = false).
func DeleteClass(db *sql.DB, classID string) error {
	result, err := db.Exec(`UPDATE classes SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`, classID)
	if err != nil {
		return fmt.Errorf("failed to delete class: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("class not found or already deleted")
	}
	return nil
}

// GetAllStudents returns all active students with their class info.
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	return queryStudents(db, `WHERE s.is_active = true`)
}

// GetStudentsByClass returns active students in one class.
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	return queryStudents(db, `WHERE s.is_active = true AND s.class_id = $1`, classID)
}

func queryStudents(db *sql.DB, where string, args ...interface{}) ([]*models.Student, error) {
	query := `SELECT s.id, s.name, s.phone, s.class_id, s.enrolled_at, s.is_active, s.created_at, s.updated_at,
			  c.id, c.name, c.schedule, c.cycle_type
			  FROM students s
			  LEFT JOIN classes c ON s.class_id = c.id ` + where + `
			  ORDER BY s.name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var classID, className, classSchedule, classCycleType sql.NullString
		err := rows.Scan(
			&student.ID, &student.Name, &student.Phone, &student.ClassID, &student.EnrolledAt,
			&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
			&classID, &className, &classSchedule, &classCycleType,
		)
		if err != nil {
			continue
		}
		if classID.Valid {
			student.Class = &models.Class{
				ID:        classID.String,
				Name:      className.String,
				Schedule:  classSchedule.String,
				CycleType: classCycleType.String,
			}
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// GetStudentByID retrieves a single active student.
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	students, err := queryStudents(db, `WHERE s.is_active = true AND s.id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("student not found")
	}
	return students[0], nil
}

// CreateStudent inserts a new student and fills in the generated fields.
func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (name, phone, class_id, enrolled_at, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, is_active, created_at, updated_at`

	err := db.QueryRow(query, student.Name, student.Phone, student.ClassID, student.EnrolledAt).Scan(
		&student.ID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create student: %v", err)
	}
	return nil
}

// UpdateStudent updates an existing student.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET name = $1, phone = $2, class_id = $3, updated_at = NOW()
			  WHERE id = $4 AND is_active = true
			  RETURNING updated_at`

	err := db.QueryRow(query, student.Name, student.Phone, student.ClassID, student.ID).Scan(&student.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("student not found")
		}
		return fmt.Errorf("failed to update student: %v", err)
	}
	return nil
}

// DeleteStudent soft deletes a student.
func DeleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(`UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1 AND is_active = true`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("student not found or already deleted")
	}
	return nil
}
