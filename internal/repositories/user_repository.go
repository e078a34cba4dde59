package repositories

import (
	"database/sql"
	"errors"

	"femida/internal/domain"
	"femida/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, username, password_hash, first_name, last_name, role, phone, last_seen, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Role, &u.Phone, &u.LastSeen, &u.CreatedAt)
	return u, err
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	u, err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) GetByUsername(username string) (models.User, error) {
	u, err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE username=?`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) Create(u models.User) (models.User, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (username, password_hash, first_name, last_name, role, phone)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.Phone)
	if err != nil {
		if isDuplicate(err) {
			return u, domain.ConflictError{Resource: "user", Err: err}
		}
		return u, err
	}
	u.ID, _ = res.LastInsertId()
	return u, nil
}

func (r UserRepository) Update(u models.User) error {
	res, err := r.DB.Exec(`
		UPDATE users SET first_name=?, last_name=?, role=?, phone=? WHERE id=?`,
		u.FirstName, u.LastName, u.Role, u.Phone, u.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, "user")
}

func (r UserRepository) UpdatePassword(id int64, hash string) error {
	res, err := r.DB.Exec(`UPDATE users SET password_hash=? WHERE id=?`, hash, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "user")
}

// Delete removes the account permanently. Staff accounts are not covered by
// the trash flow.
func (r UserRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "user")
}

// TouchLastSeen records activity for the online indicator.
func (r UserRepository) TouchLastSeen(id int64) error {
	_, err := r.DB.Exec(`UPDATE users SET last_seen=CURRENT_TIMESTAMP WHERE id=?`, id)
	return err
}
