package services

import (
	"fmt"

	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/repositories"
	"femida/internal/utils"
)

// TrashService dispatches soft-delete maintenance over the three trashable
// entity types. Type names match the URL segment.
type TrashService struct {
	RoomRepo    repositories.RoomRepository
	GuestRepo   repositories.GuestRepository
	BookingRepo repositories.BookingRepository
	AuditRepo   repositories.AuditRepository
	RequestID   string
}

const (
	TrashRooms    = "rooms"
	TrashGuests   = "guests"
	TrashBookings = "bookings"
)

func (s TrashService) List(entityType string) (any, error) {
	switch entityType {
	case TrashRooms:
		return s.RoomRepo.ListDeleted()
	case TrashGuests:
		return s.GuestRepo.ListDeleted()
	case TrashBookings:
		return s.BookingRepo.ListDeleted()
	}
	return nil, domain.ValidationError{Field: "type", Msg: "unknown trash type"}
}

func (s TrashService) Restore(entityType string, id, userID int64) error {
	var err error
	switch entityType {
	case TrashRooms:
		err = s.RoomRepo.Restore(id)
	case TrashGuests:
		err = s.GuestRepo.Restore(id)
	case TrashBookings:
		err = s.BookingRepo.Restore(id)
	default:
		return domain.ValidationError{Field: "type", Msg: "unknown trash type"}
	}
	if err != nil {
		return err
	}
	s.audit(userID, models.AuditRestore, entityType, id)
	utils.LogEvent(s.RequestID, "trash", "restore", fmt.Sprintf("type=%s id=%d", entityType, id))
	return nil
}

// Purge removes the row permanently. Only rows already in the trash qualify.
func (s TrashService) Purge(entityType string, id, userID int64) error {
	var err error
	switch entityType {
	case TrashRooms:
		err = s.RoomRepo.Purge(id)
	case TrashGuests:
		err = s.GuestRepo.Purge(id)
	case TrashBookings:
		err = s.BookingRepo.Purge(id)
	default:
		return domain.ValidationError{Field: "type", Msg: "unknown trash type"}
	}
	if err != nil {
		return err
	}
	s.audit(userID, models.AuditPurge, entityType, id)
	utils.LogEvent(s.RequestID, "trash", "purge", fmt.Sprintf("type=%s id=%d", entityType, id))
	return nil
}

func (s TrashService) audit(userID int64, action, objectType string, objectID int64) {
	_ = s.AuditRepo.Insert(models.AuditLog{
		UserID:     userID,
		Action:     action,
		ObjectType: objectType,
		ObjectID:   objectID,
	})
}
