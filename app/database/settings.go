package database

import (
	"database/sql"

	"tuition-center/app/models"
	"tuition-center/app/settings"
)

// SettingsRepo implements settings.Repository on Postgres. The unique
// constraint on settings.key plus ON CONFLICT makes Upsert atomic: two
// concurrent upserts for the same key cannot both create a row.
type SettingsRepo struct {
	DB *sql.DB
}

// List returns every settings row.
func (r *SettingsRepo) List() ([]*models.Setting, error) {
	query := `SELECT id, key, value, description, created_at, updated_at
			  FROM settings
			  ORDER BY key`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Setting
	for rows.Next() {
		s := &models.Setting{}
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			continue
		}
		list = append(list, s)
	}

	return list, rows.Err()
}

// Upsert creates or updates the row for s.Key and returns the stored row.
func (r *SettingsRepo) Upsert(s *models.Setting) (*models.Setting, error) {
	query := `INSERT INTO settings (key, value, description)
			  VALUES ($1, $2, $3)
			  ON CONFLICT ON CONSTRAINT settings_key_key
			  DO UPDATE SET value = EXCLUDED.value, description = EXCLUDED.description, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRow(query, s.Key, s.Value, s.Description).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes the row for key; a missing key is settings.ErrNotFound.
func (r *SettingsRepo) Delete(key string) error {
	result, err := r.DB.Exec(`DELETE FROM settings WHERE key = $1`, key)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return settings.ErrNotFound
	}
	return nil
}
