package repositories

import (
	"database/sql"
	"errors"

	"femida/internal/domain"
	"femida/internal/domain/models"
)

type GuestRepository struct {
	DB *sql.DB
}

const guestColumns = `id, full_name, phone, email, address, people_count, notes, inn,
	registration_date, total_spent, visits_count, status, is_deleted`

func scanGuest(row interface{ Scan(...any) error }) (models.Guest, error) {
	var g models.Guest
	err := row.Scan(&g.ID, &g.FullName, &g.Phone, &g.Email, &g.Address, &g.PeopleCount,
		&g.Notes, &g.INN, &g.RegistrationDate, &g.TotalSpent, &g.VisitsCount,
		&g.Status, &g.IsDeleted)
	return g, err
}

func (r GuestRepository) list(where string, args ...any) ([]models.Guest, error) {
	rows, err := r.DB.Query(`SELECT `+guestColumns+` FROM guests `+where+` ORDER BY full_name`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r GuestRepository) List() ([]models.Guest, error) {
	return r.list(`WHERE is_deleted=0`)
}

func (r GuestRepository) ListDeleted() ([]models.Guest, error) {
	return r.list(`WHERE is_deleted=1`)
}

func (r GuestRepository) GetByID(id int64) (models.Guest, error) {
	g, err := scanGuest(r.DB.QueryRow(`SELECT `+guestColumns+` FROM guests WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return g, domain.NotFoundError{Resource: "guest", Err: err}
	}
	return g, err
}

func (r GuestRepository) Create(g models.Guest) (models.Guest, error) {
	res, err := r.DB.Exec(`
		INSERT INTO guests (full_name, phone, email, address, people_count, notes, inn,
			registration_date, total_spent, visits_count, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.FullName, g.Phone, g.Email, g.Address, g.PeopleCount, g.Notes, g.INN,
		g.RegistrationDate, g.TotalSpent, g.VisitsCount, g.Status)
	if err != nil {
		return g, err
	}
	g.ID, _ = res.LastInsertId()
	return g, nil
}

func (r GuestRepository) Update(g models.Guest) error {
	res, err := r.DB.Exec(`
		UPDATE guests SET full_name=?, phone=?, email=?, address=?, people_count=?, notes=?,
			inn=?, status=?
		WHERE id=? AND is_deleted=0`,
		g.FullName, g.Phone, g.Email, g.Address, g.PeopleCount, g.Notes, g.INN, g.Status, g.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, "guest")
}

// AddVisit bumps the aggregate counters when a booking for the guest is
// created.
func (r GuestRepository) AddVisit(id int64, amount float64) error {
	_, err := r.DB.Exec(`
		UPDATE guests SET visits_count=visits_count+1, total_spent=total_spent+? WHERE id=?`,
		amount, id)
	return err
}

func (r GuestRepository) SoftDelete(id int64) error {
	res, err := r.DB.Exec(`UPDATE guests SET is_deleted=1 WHERE id=? AND is_deleted=0`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "guest")
}

func (r GuestRepository) Restore(id int64) error {
	res, err := r.DB.Exec(`UPDATE guests SET is_deleted=0 WHERE id=? AND is_deleted=1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "guest")
}

func (r GuestRepository) Purge(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM guests WHERE id=? AND is_deleted=1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "guest")
}
