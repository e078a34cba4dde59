package repositories

import (
	"database/sql"

	"femida/internal/domain/models"
)

type AuditRepository struct {
	DB *sql.DB
}

func (r AuditRepository) Insert(entry models.AuditLog) error {
	var userID any
	if entry.UserID != 0 {
		userID = entry.UserID
	}
	_, err := r.DB.Exec(`
		INSERT INTO audit_logs (user_id, action, object_type, object_id, details)
		VALUES (?, ?, ?, ?, ?)`,
		userID, entry.Action, entry.ObjectType, entry.ObjectID, entry.Details)
	return err
}

// List returns the most recent entries first, capped by limit.
func (r AuditRepository) List(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.Query(`
		SELECT id, user_id, action, object_type, object_id, details, created_at
		FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AuditLog
	for rows.Next() {
		var entry models.AuditLog
		var userID sql.NullInt64
		if err := rows.Scan(&entry.ID, &userID, &entry.Action, &entry.ObjectType,
			&entry.ObjectID, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			entry.UserID = userID.Int64
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
