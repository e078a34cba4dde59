package services

import (
	"fmt"
	"math"
	"time"

	"femida/internal/availability"
	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/repositories"
	"femida/internal/utils"

	"github.com/google/uuid"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	RoomRepo    repositories.RoomRepository
	GuestRepo   repositories.GuestRepository
	AuditRepo   repositories.AuditRepository
	RequestID   string
}

// List returns live bookings with the display status derived against now.
func (s BookingService) List(now time.Time) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.List()
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		// Reads tolerate malformed rows; they are only flagged for cleanup.
		if !b.CheckOut.After(b.CheckIn) {
			utils.LogEvent(s.RequestID, "bookings", "data_quality",
				fmt.Sprintf("booking %d has a non-positive interval", b.ID))
		}
	}
	deriveStatuses(bookings, now)
	return bookings, nil
}

func (s BookingService) Get(id int64, now time.Time) (models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return b, err
	}
	b.Status = availability.StatusOf(b, now)
	return b, nil
}

func (s BookingService) Create(in models.Booking, userID int64) (models.Booking, error) {
	if err := validateBooking(in); err != nil {
		return in, err
	}

	room, err := s.RoomRepo.GetByID(in.RoomID)
	if err != nil {
		return in, err
	}
	if room.IsDeleted {
		return in, domain.ValidationError{Field: "room_id", Msg: "room is in trash"}
	}
	guest, err := s.GuestRepo.GetByID(in.GuestID)
	if err != nil {
		return in, err
	}
	if guest.IsDeleted {
		return in, domain.ValidationError{Field: "guest_id", Msg: "guest is in trash"}
	}

	existing, err := s.BookingRepo.ListForRoom(in.RoomID)
	if err != nil {
		return in, err
	}
	if id, clash := findOverlap(existing, in); clash {
		return in, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("room %s is already booked for these dates (booking #%d)", room.Number, id),
		}
	}

	if in.TotalAmount == 0 {
		in.TotalAmount = computeTotal(in.CheckIn, in.CheckOut, room.PricePerNight)
	}
	in.ReferenceCode = uuid.NewString()
	in.CreatedBy = userID

	created, err := s.BookingRepo.Create(in)
	if err != nil {
		return created, err
	}
	_ = s.GuestRepo.AddVisit(in.GuestID, in.TotalAmount)

	s.audit(userID, models.AuditCreate, created.ID, fmt.Sprintf("room=%s guest=%s", room.Number, guest.FullName))
	utils.LogEvent(s.RequestID, "bookings", "create", fmt.Sprintf("id=%d room_id=%d", created.ID, in.RoomID))
	return created, nil
}

func (s BookingService) Update(in models.Booking, userID int64) error {
	if err := validateBooking(in); err != nil {
		return err
	}
	current, err := s.BookingRepo.GetByID(in.ID)
	if err != nil {
		return err
	}
	if _, err := s.GuestRepo.GetByID(in.GuestID); err != nil {
		return err
	}
	room, err := s.RoomRepo.GetByID(in.RoomID)
	if err != nil {
		return err
	}

	existing, err := s.BookingRepo.ListForRoom(in.RoomID)
	if err != nil {
		return err
	}
	if id, clash := findOverlap(existing, in); clash {
		return domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("room %s is already booked for these dates (booking #%d)", room.Number, id),
		}
	}

	if in.TotalAmount == 0 {
		in.TotalAmount = current.TotalAmount
	}
	if err := s.BookingRepo.Update(in); err != nil {
		return err
	}

	s.audit(userID, models.AuditUpdate, in.ID, fmt.Sprintf("room=%s", room.Number))
	utils.LogEvent(s.RequestID, "bookings", "update", fmt.Sprintf("id=%d", in.ID))
	return nil
}

// Cancel records the cancellation flag. The booking keeps its dates and stays
// listed; it just stops occupying the room.
func (s BookingService) Cancel(id, userID int64) error {
	if err := s.BookingRepo.Cancel(id); err != nil {
		return err
	}
	s.audit(userID, models.AuditCancel, id, "")
	utils.LogEvent(s.RequestID, "bookings", "cancel", fmt.Sprintf("id=%d", id))
	return nil
}

func (s BookingService) SoftDelete(id, userID int64) error {
	if err := s.BookingRepo.SoftDelete(id); err != nil {
		return err
	}
	s.audit(userID, models.AuditDelete, id, "")
	utils.LogEvent(s.RequestID, "bookings", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func (s BookingService) Restore(id, userID int64) error {
	if err := s.BookingRepo.Restore(id); err != nil {
		return err
	}
	s.audit(userID, models.AuditRestore, id, "")
	utils.LogEvent(s.RequestID, "bookings", "restore", fmt.Sprintf("id=%d", id))
	return nil
}

// MonthCalendar builds the Monday-first month grid for the calendar view.
func (s BookingService) MonthCalendar(year int, month time.Month, now time.Time) (availability.MonthGrid, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	bookings, err := s.BookingRepo.ListBetween(first, next)
	if err != nil {
		return availability.MonthGrid{}, err
	}
	deriveStatuses(bookings, now)
	return availability.BuildMonthGrid(year, month, availability.NewIndex(bookings)), nil
}

// DayGrid builds one page of the room-by-day table. from and to are inclusive
// day bounds; offset selects the visible window and is clamped to the range.
func (s BookingService) DayGrid(from, to time.Time, offset int, buildingID int64, now time.Time) (availability.RoomDayGrid, error) {
	if to.Before(from) {
		return availability.RoomDayGrid{}, domain.ValidationError{Field: "to", Msg: "must not be before from"}
	}

	rooms, err := s.RoomRepo.List(buildingID)
	if err != nil {
		return availability.RoomDayGrid{}, err
	}
	// ListBetween is half-open, so push the bound past the last day.
	bookings, err := s.BookingRepo.ListBetween(utils.DayUTC(from), utils.DayUTC(to).AddDate(0, 0, 1))
	if err != nil {
		return availability.RoomDayGrid{}, err
	}
	deriveStatuses(bookings, now)

	ix := availability.NewIndex(bookings)
	for i := range rooms {
		rooms[i].Occupancy = availability.RoomOccupancy(rooms[i].Maintenance, ix.ForRoom(rooms[i].ID), now)
	}
	return availability.BuildRoomDayGrid(rooms, from, to, offset, availability.DefaultPageSize, ix), nil
}

func (s BookingService) audit(userID int64, action string, objectID int64, details string) {
	_ = s.AuditRepo.Insert(models.AuditLog{
		UserID:     userID,
		Action:     action,
		ObjectType: "booking",
		ObjectID:   objectID,
		Details:    details,
	})
}

func deriveStatuses(bookings []models.Booking, now time.Time) {
	for i := range bookings {
		bookings[i].Status = availability.StatusOf(bookings[i], now)
	}
}

func validateBooking(b models.Booking) error {
	if b.GuestID <= 0 {
		return domain.ValidationError{Field: "guest_id", Msg: "required"}
	}
	if b.RoomID <= 0 {
		return domain.ValidationError{Field: "room_id", Msg: "required"}
	}
	if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
		return domain.ValidationError{Field: "check_in", Msg: "check_in and check_out are required"}
	}
	if !b.CheckOut.After(b.CheckIn) {
		return domain.ValidationError{Field: "check_out", Msg: "must be after check_in"}
	}
	if b.PeopleCount <= 0 {
		return domain.ValidationError{Field: "people_count", Msg: "must be positive"}
	}
	if b.PaymentStatus != "" && !b.PaymentStatus.Valid() {
		return domain.ValidationError{Field: "payment_status", Msg: "unknown value"}
	}
	if b.PaymentMethod != "" && !b.PaymentMethod.Valid() {
		return domain.ValidationError{Field: "payment_method", Msg: "unknown value"}
	}
	return nil
}

// findOverlap reports the first existing booking whose half-open interval
// intersects the candidate's. Cancelled rows never conflict; the candidate's
// own row is skipped so updates do not collide with themselves.
func findOverlap(existing []models.Booking, candidate models.Booking) (int64, bool) {
	for _, e := range existing {
		if e.ID == candidate.ID || e.Cancelled || e.IsDeleted {
			continue
		}
		if candidate.CheckIn.Before(e.CheckOut) && e.CheckIn.Before(candidate.CheckOut) {
			return e.ID, true
		}
	}
	return 0, false
}

// computeTotal prices a stay as nights times the nightly rate. Partial nights
// round up; a stay shorter than one night still costs one.
func computeTotal(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return float64(n) * pricePerNight
}
