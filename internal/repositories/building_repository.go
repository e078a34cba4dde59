package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"femida/internal/domain"
	"femida/internal/domain/models"
)

// BuildingRepository wraps DB access for buildings. Buildings are not
// soft-deleted themselves; deleting one cascades to its rooms in the schema.
type BuildingRepository struct {
	DB *sql.DB
}

const buildingColumns = `id, name, address, description`

func scanBuilding(row interface{ Scan(...any) error }) (models.Building, error) {
	var b models.Building
	err := row.Scan(&b.ID, &b.Name, &b.Address, &b.Description)
	return b, err
}

func (r BuildingRepository) List() ([]models.Building, error) {
	rows, err := r.DB.Query(`SELECT ` + buildingColumns + ` FROM buildings ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Building
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BuildingRepository) GetByID(id int64) (models.Building, error) {
	b, err := scanBuilding(r.DB.QueryRow(`SELECT `+buildingColumns+` FROM buildings WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return b, domain.NotFoundError{Resource: "building", Err: err}
	}
	return b, err
}

func (r BuildingRepository) Create(b models.Building) (models.Building, error) {
	res, err := r.DB.Exec(`INSERT INTO buildings (name, address, description) VALUES (?, ?, ?)`,
		b.Name, b.Address, b.Description)
	if err != nil {
		if isDuplicate(err) {
			return b, domain.ConflictError{Resource: "building", Msg: "name or address already exists", Err: err}
		}
		return b, err
	}
	b.ID, _ = res.LastInsertId()
	return b, nil
}

func (r BuildingRepository) Update(b models.Building) error {
	res, err := r.DB.Exec(`UPDATE buildings SET name=?, address=?, description=? WHERE id=?`,
		b.Name, b.Address, b.Description, b.ID)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "building", Msg: "name or address already exists", Err: err}
		}
		return err
	}
	return requireAffected(res, "building")
}

func (r BuildingRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM buildings WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "building")
}

// isDuplicate matches MySQL duplicate-key errors without importing driver
// internals.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}

func requireAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
