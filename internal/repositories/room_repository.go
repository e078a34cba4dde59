package repositories

import (
	"database/sql"
	"errors"

	"femida/internal/domain"
	"femida/internal/domain/models"
)

// RoomRepository wraps DB access for rooms. DELETE is a soft delete; the
// trash endpoints restore or purge.
type RoomRepository struct {
	DB *sql.DB
}

const roomColumns = `r.id, r.building_id, b.name, r.number, r.capacity, r.room_type, r.room_class,
	r.maintenance, r.description, r.price_per_night, r.rooms_count, r.amenities, r.is_deleted`

const roomFrom = ` FROM rooms r JOIN buildings b ON b.id = r.building_id `

func scanRoom(row interface{ Scan(...any) error }) (models.Room, error) {
	var m models.Room
	err := row.Scan(&m.ID, &m.BuildingID, &m.BuildingName, &m.Number, &m.Capacity, &m.RoomType,
		&m.RoomClass, &m.Maintenance, &m.Description, &m.PricePerNight, &m.RoomsCount,
		&m.Amenities, &m.IsDeleted)
	return m, err
}

func (r RoomRepository) list(where string, args ...any) ([]models.Room, error) {
	rows, err := r.DB.Query(`SELECT `+roomColumns+roomFrom+where+` ORDER BY b.name, r.number`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Room
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// List returns live rooms, optionally restricted to one building.
func (r RoomRepository) List(buildingID int64) ([]models.Room, error) {
	if buildingID > 0 {
		return r.list(`WHERE r.is_deleted=0 AND r.building_id=?`, buildingID)
	}
	return r.list(`WHERE r.is_deleted=0`)
}

// ListDeleted returns trashed rooms.
func (r RoomRepository) ListDeleted() ([]models.Room, error) {
	return r.list(`WHERE r.is_deleted=1`)
}

func (r RoomRepository) GetByID(id int64) (models.Room, error) {
	m, err := scanRoom(r.DB.QueryRow(`SELECT `+roomColumns+roomFrom+`WHERE r.id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return m, domain.NotFoundError{Resource: "room", Err: err}
	}
	return m, err
}

func (r RoomRepository) Create(m models.Room) (models.Room, error) {
	res, err := r.DB.Exec(`
		INSERT INTO rooms (building_id, number, capacity, room_type, room_class, maintenance,
			description, price_per_night, rooms_count, amenities)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.BuildingID, m.Number, m.Capacity, m.RoomType, m.RoomClass, m.Maintenance,
		m.Description, m.PricePerNight, m.RoomsCount, m.Amenities)
	if err != nil {
		return m, err
	}
	m.ID, _ = res.LastInsertId()
	return m, nil
}

func (r RoomRepository) Update(m models.Room) error {
	res, err := r.DB.Exec(`
		UPDATE rooms SET building_id=?, number=?, capacity=?, room_type=?, room_class=?,
			maintenance=?, description=?, price_per_night=?, rooms_count=?, amenities=?
		WHERE id=? AND is_deleted=0`,
		m.BuildingID, m.Number, m.Capacity, m.RoomType, m.RoomClass, m.Maintenance,
		m.Description, m.PricePerNight, m.RoomsCount, m.Amenities, m.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, "room")
}

func (r RoomRepository) SoftDelete(id int64) error {
	res, err := r.DB.Exec(`UPDATE rooms SET is_deleted=1 WHERE id=? AND is_deleted=0`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "room")
}

func (r RoomRepository) Restore(id int64) error {
	res, err := r.DB.Exec(`UPDATE rooms SET is_deleted=0 WHERE id=? AND is_deleted=1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "room")
}

// Purge removes a trashed room permanently. Live rooms cannot be purged.
func (r RoomRepository) Purge(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM rooms WHERE id=? AND is_deleted=1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "room")
}
