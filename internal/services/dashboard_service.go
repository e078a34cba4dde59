package services

import (
	"sort"
	"time"

	"femida/internal/availability"
	"femida/internal/domain/models"
	"femida/internal/repositories"
	"femida/internal/utils"
)

type DashboardService struct {
	BookingRepo repositories.BookingRepository
	RoomRepo    repositories.RoomRepository
	GuestRepo   repositories.GuestRepository
	RequestID   string
}

// DashboardStats is the landing-page summary. Every number is derived at
// read time from the live rows.
type DashboardStats struct {
	RoomsTotal       int              `json:"rooms_total"`
	RoomsFree        int              `json:"rooms_free"`
	RoomsOccupied    int              `json:"rooms_occupied"`
	RoomsUnavailable int              `json:"rooms_unavailable"`
	GuestsTotal      int              `json:"guests_total"`
	BookingsActive   int              `json:"bookings_active"`
	BookingsUpcoming int              `json:"bookings_upcoming"`
	PaymentsPending  int              `json:"payments_pending"`
	PaidToday        float64          `json:"paid_today"`
	RecentBookings   []models.Booking `json:"recent_bookings"`
}

func (s DashboardService) Stats(now time.Time) (DashboardStats, error) {
	var stats DashboardStats

	rooms, err := s.RoomRepo.List(0)
	if err != nil {
		return stats, err
	}
	bookings, err := s.BookingRepo.List()
	if err != nil {
		return stats, err
	}
	guests, err := s.GuestRepo.List()
	if err != nil {
		return stats, err
	}
	deriveStatuses(bookings, now)

	stats = buildStats(rooms, bookings, len(guests), now)
	utils.LogEvent(s.RequestID, "dashboard", "stats", "")
	return stats, nil
}

// buildStats is pure so the aggregation rules are testable without a DB.
func buildStats(rooms []models.Room, bookings []models.Booking, guestCount int, now time.Time) DashboardStats {
	stats := DashboardStats{
		RoomsTotal:  len(rooms),
		GuestsTotal: guestCount,
	}

	ix := availability.NewIndex(bookings)
	for _, room := range rooms {
		switch availability.RoomOccupancy(room.Maintenance, ix.ForRoom(room.ID), now) {
		case models.RoomOccupied:
			stats.RoomsOccupied++
		case models.RoomUnavailable:
			stats.RoomsUnavailable++
		default:
			stats.RoomsFree++
		}
	}

	today := utils.DayUTC(now)
	for _, b := range bookings {
		switch b.Status {
		case models.BookingActive:
			stats.BookingsActive++
		case models.BookingUpcoming:
			stats.BookingsUpcoming++
		}
		if !b.Cancelled && b.PaymentStatus == models.PaymentPending {
			stats.PaymentsPending++
		}
		if b.PaymentStatus == models.PaymentPaid && utils.DayUTC(b.CreatedAt).Equal(today) {
			stats.PaidToday += b.PaymentAmount
		}
	}

	stats.RecentBookings = recentBookings(bookings, 5)
	return stats
}

// recentBookings returns the n newest bookings by creation time without
// reordering the input.
func recentBookings(bookings []models.Booking, n int) []models.Booking {
	sorted := make([]models.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
