package repositories

import (
	"database/sql"
	"errors"
	"time"

	"femida/internal/domain"
	"femida/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

// bookingColumns joins rooms, buildings and guests so list rows carry the
// display fields without extra round trips.
const bookingColumns = `b.id, b.reference_code, b.guest_id, b.room_id, b.check_in, b.check_out,
	b.people_count, b.cancelled, b.payment_status, b.payment_method, b.payment_amount,
	b.total_amount, b.comments, b.created_by, b.created_at, b.is_deleted,
	r.number, bl.name, g.full_name, g.phone, g.inn`

const bookingFrom = ` FROM bookings b
	JOIN rooms r      ON r.id = b.room_id
	JOIN buildings bl ON bl.id = r.building_id
	JOIN guests g     ON g.id = b.guest_id `

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	var createdBy sql.NullInt64
	err := row.Scan(&b.ID, &b.ReferenceCode, &b.GuestID, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.PeopleCount, &b.Cancelled, &b.PaymentStatus, &b.PaymentMethod, &b.PaymentAmount,
		&b.TotalAmount, &b.Comments, &createdBy, &b.CreatedAt, &b.IsDeleted,
		&b.RoomNumber, &b.BuildingName, &b.GuestName, &b.GuestPhone, &b.GuestINN)
	if createdBy.Valid {
		b.CreatedBy = createdBy.Int64
	}
	return b, err
}

func (r BookingRepository) list(where string, args ...any) ([]models.Booking, error) {
	rows, err := r.DB.Query(`SELECT `+bookingColumns+bookingFrom+where+` ORDER BY b.check_in, b.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) List() ([]models.Booking, error) {
	return r.list(`WHERE b.is_deleted=0`)
}

func (r BookingRepository) ListDeleted() ([]models.Booking, error) {
	return r.list(`WHERE b.is_deleted=1`)
}

// ListBetween returns live bookings whose stay intersects [from, to). Both
// bounds are instants; a booking checking out exactly at from is excluded.
func (r BookingRepository) ListBetween(from, to time.Time) ([]models.Booking, error) {
	return r.list(`WHERE b.is_deleted=0 AND b.check_in < ? AND b.check_out > ?`, to, from)
}

// ListForRoom returns live, non-cancelled bookings for one room, used for
// overlap checks on create and update.
func (r BookingRepository) ListForRoom(roomID int64) ([]models.Booking, error) {
	return r.list(`WHERE b.is_deleted=0 AND b.cancelled=0 AND b.room_id=?`, roomID)
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+bookingFrom+`WHERE b.id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

func (r BookingRepository) Create(b models.Booking) (models.Booking, error) {
	var createdBy any
	if b.CreatedBy != 0 {
		createdBy = b.CreatedBy
	}
	res, err := r.DB.Exec(`
		INSERT INTO bookings (reference_code, guest_id, room_id, check_in, check_out,
			people_count, payment_status, payment_method, payment_amount, total_amount,
			comments, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ReferenceCode, b.GuestID, b.RoomID, b.CheckIn, b.CheckOut,
		b.PeopleCount, b.PaymentStatus, b.PaymentMethod, b.PaymentAmount, b.TotalAmount,
		b.Comments, createdBy)
	if err != nil {
		return b, err
	}
	b.ID, _ = res.LastInsertId()
	return b, nil
}

func (r BookingRepository) Update(b models.Booking) error {
	res, err := r.DB.Exec(`
		UPDATE bookings SET guest_id=?, room_id=?, check_in=?, check_out=?, people_count=?,
			payment_status=?, payment_method=?, payment_amount=?, total_amount=?, comments=?
		WHERE id=? AND is_deleted=0`,
		b.GuestID, b.RoomID, b.CheckIn, b.CheckOut, b.PeopleCount,
		b.PaymentStatus, b.PaymentMethod, b.PaymentAmount, b.TotalAmount, b.Comments, b.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, "booking")
}

// Cancel flips the stored cancellation flag. Cancelled bookings stay in lists
// but never count as occupying a room.
func (r BookingRepository) Cancel(id int64) error {
	res, err := r.DB.Exec(`UPDATE bookings SET cancelled=1 WHERE id=? AND is_deleted=0 AND cancelled=0`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "booking")
}

func (r BookingRepository) SoftDelete(id int64) error {
	res, err := r.DB.Exec(`UPDATE bookings SET is_deleted=1 WHERE id=? AND is_deleted=0`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "booking")
}

func (r BookingRepository) Restore(id int64) error {
	res, err := r.DB.Exec(`UPDATE bookings SET is_deleted=0 WHERE id=? AND is_deleted=1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "booking")
}

func (r BookingRepository) Purge(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE id=? AND is_deleted=1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "booking")
}
