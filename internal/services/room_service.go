package services

import (
	"fmt"
	"time"

	"femida/internal/availability"
	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/repositories"
	"femida/internal/utils"
)

type RoomService struct {
	RoomRepo    repositories.RoomRepository
	BookingRepo repositories.BookingRepository
	AuditRepo   repositories.AuditRepository
	RequestID   string
}

// List returns live rooms with the occupancy badge derived against now.
func (s RoomService) List(buildingID int64, now time.Time) ([]models.Room, error) {
	rooms, err := s.RoomRepo.List(buildingID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.List()
	if err != nil {
		return nil, err
	}
	ix := availability.NewIndex(bookings)
	for i := range rooms {
		rooms[i].Occupancy = availability.RoomOccupancy(rooms[i].Maintenance, ix.ForRoom(rooms[i].ID), now)
	}
	return rooms, nil
}

func (s RoomService) Get(id int64, now time.Time) (models.Room, error) {
	room, err := s.RoomRepo.GetByID(id)
	if err != nil {
		return room, err
	}
	bookings, err := s.BookingRepo.ListForRoom(id)
	if err != nil {
		return room, err
	}
	deriveStatuses(bookings, now)
	room.Occupancy = availability.RoomOccupancy(room.Maintenance, bookings, now)
	return room, nil
}

func (s RoomService) Create(in models.Room, userID int64) (models.Room, error) {
	in, err := normalizeRoom(in)
	if err != nil {
		return in, err
	}
	created, err := s.RoomRepo.Create(in)
	if err != nil {
		return created, err
	}
	s.audit(userID, models.AuditCreate, created.ID, created.Number)
	utils.LogEvent(s.RequestID, "rooms", "create", fmt.Sprintf("id=%d number=%s", created.ID, created.Number))
	return created, nil
}

// BulkCreate inserts several rooms at once, typically a floor worth of
// identical rooms. All rows are validated before the first insert.
func (s RoomService) BulkCreate(in []models.Room, userID int64) ([]models.Room, error) {
	if len(in) == 0 {
		return nil, domain.ValidationError{Field: "rooms", Msg: "empty list"}
	}
	normalized := make([]models.Room, 0, len(in))
	for _, room := range in {
		room, err := normalizeRoom(room)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, room)
	}

	out := make([]models.Room, 0, len(normalized))
	for _, room := range normalized {
		created, err := s.RoomRepo.Create(room)
		if err != nil {
			return out, err
		}
		s.audit(userID, models.AuditCreate, created.ID, created.Number)
		out = append(out, created)
	}
	utils.LogEvent(s.RequestID, "rooms", "bulk_create", fmt.Sprintf("count=%d", len(out)))
	return out, nil
}

func (s RoomService) Update(in models.Room, userID int64) error {
	in, err := normalizeRoom(in)
	if err != nil {
		return err
	}
	if err := s.RoomRepo.Update(in); err != nil {
		return err
	}
	s.audit(userID, models.AuditUpdate, in.ID, in.Number)
	utils.LogEvent(s.RequestID, "rooms", "update", fmt.Sprintf("id=%d", in.ID))
	return nil
}

func (s RoomService) SoftDelete(id, userID int64) error {
	if err := s.RoomRepo.SoftDelete(id); err != nil {
		return err
	}
	s.audit(userID, models.AuditDelete, id, "")
	utils.LogEvent(s.RequestID, "rooms", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func (s RoomService) Restore(id, userID int64) error {
	if err := s.RoomRepo.Restore(id); err != nil {
		return err
	}
	s.audit(userID, models.AuditRestore, id, "")
	utils.LogEvent(s.RequestID, "rooms", "restore", fmt.Sprintf("id=%d", id))
	return nil
}

func normalizeRoom(r models.Room) (models.Room, error) {
	r.Number = utils.TrimOrEmpty(r.Number)
	if r.Number == "" {
		return r, domain.ValidationError{Field: "number", Msg: "required"}
	}
	if r.BuildingID <= 0 {
		return r, domain.ValidationError{Field: "building_id", Msg: "required"}
	}
	if r.Capacity <= 0 {
		return r, domain.ValidationError{Field: "capacity", Msg: "must be positive"}
	}
	if r.RoomClass == "" {
		r.RoomClass = models.RoomClassStandard
	}
	if !r.RoomClass.Valid() {
		return r, domain.ValidationError{Field: "room_class", Msg: "unknown value"}
	}
	if r.PricePerNight < 0 {
		return r, domain.ValidationError{Field: "price_per_night", Msg: "must not be negative"}
	}
	if r.RoomsCount <= 0 {
		r.RoomsCount = 1
	}
	return r, nil
}

func (s RoomService) audit(userID int64, action string, objectID int64, details string) {
	_ = s.AuditRepo.Insert(models.AuditLog{
		UserID:     userID,
		Action:     action,
		ObjectType: "room",
		ObjectID:   objectID,
		Details:    details,
	})
}
