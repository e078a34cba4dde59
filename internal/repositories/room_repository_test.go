package repositories

import (
	"testing"
	"time"

	"femida/internal/domain"
	"femida/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "building_id", "name", "number", "capacity", "room_type",
		"room_class", "maintenance", "description", "price_per_night",
		"rooms_count", "amenities", "is_deleted",
	})
}

func TestRoomRepositoryListFiltersDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM rooms r JOIN buildings b ON b.id = r.building_id WHERE r.is_deleted=0").
		WillReturnRows(roomRows().
			AddRow(1, 1, "Main", "101", 2, "double", "standard", false, "", 120.0, 1, "wifi", false))

	rooms, err := RoomRepository{DB: db}.List(0)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Number != "101" || rooms[0].BuildingName != "Main" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRoomRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM rooms r JOIN buildings b").WithArgs(int64(9)).
		WillReturnRows(roomRows())

	_, err = RoomRepository{DB: db}.GetByID(9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRoomRepositorySoftDeleteMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE rooms SET is_deleted=1").WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (RoomRepository{DB: db}).SoftDelete(4); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for already-deleted room, got %v", err)
	}
}

func TestRoomRepositoryRestoreOnlyTouchesDeleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE rooms SET is_deleted=0 WHERE id=. AND is_deleted=1").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (RoomRepository{DB: db}).Restore(4); err != nil {
		t.Fatalf("restore error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryListBetweenHalfOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// check_in < to comes first, check_out > from second.
	mock.ExpectQuery("b.check_in < . AND b.check_out > .").
		WithArgs(to, from).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "reference_code", "guest_id", "room_id", "check_in", "check_out",
			"people_count", "cancelled", "payment_status", "payment_method",
			"payment_amount", "total_amount", "comments", "created_by", "created_at",
			"is_deleted", "number", "name", "full_name", "phone", "inn",
		}).AddRow(1, "ref", 1, 2, from, to, 2, false, "pending", "cash",
			0.0, 100.0, "", nil, from, false, "101", "Main", "Ivanov", "+7", "1234"))

	got, err := BookingRepository{DB: db}.ListBetween(from, to)
	if err != nil {
		t.Fatalf("list between error: %v", err)
	}
	if len(got) != 1 || got[0].RoomNumber != "101" || got[0].CreatedBy != 0 {
		t.Fatalf("unexpected bookings: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryCancelAlreadyCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET cancelled=1").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (BookingRepository{DB: db}).Cancel(7); !domain.IsNotFound(err) {
		t.Fatalf("expected not found when nothing to cancel, got %v", err)
	}
}

func TestBuildingRepositoryCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO buildings").
		WillReturnError(errDuplicateEntry{})

	_, err = BuildingRepository{DB: db}.Create(models.Building{Name: "Main"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate name, got %v", err)
	}
}

type errDuplicateEntry struct{}

func (errDuplicateEntry) Error() string {
	return "Error 1062 (23000): Duplicate entry 'Main' for key 'buildings.name'"
}
