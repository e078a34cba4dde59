package services

import (
	"testing"
	"time"

	"femida/internal/domain/models"
)

func TestBuildStatsOccupancyCounts(t *testing.T) {
	now := mustUTC(2024, 6, 12)
	rooms := []models.Room{
		{ID: 1},
		{ID: 2},
		{ID: 3, Maintenance: true},
	}
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, CheckIn: mustUTC(2024, 6, 10), CheckOut: mustUTC(2024, 6, 13)},
		{ID: 2, RoomID: 2, CheckIn: mustUTC(2024, 6, 20), CheckOut: mustUTC(2024, 6, 22)},
	}
	deriveStatuses(bookings, now)

	stats := buildStats(rooms, bookings, 4, now)

	if stats.RoomsTotal != 3 || stats.RoomsOccupied != 1 || stats.RoomsFree != 1 || stats.RoomsUnavailable != 1 {
		t.Fatalf("unexpected room counts: %+v", stats)
	}
	if stats.GuestsTotal != 4 {
		t.Fatalf("guest count not carried: %+v", stats)
	}
	if stats.BookingsActive != 1 || stats.BookingsUpcoming != 1 {
		t.Fatalf("unexpected booking counts: %+v", stats)
	}
}

func TestBuildStatsPayments(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 1, PaymentStatus: models.PaymentPending, CheckIn: mustUTC(2024, 6, 20), CheckOut: mustUTC(2024, 6, 22)},
		{ID: 2, PaymentStatus: models.PaymentPending, Cancelled: true, CheckIn: mustUTC(2024, 6, 20), CheckOut: mustUTC(2024, 6, 22)},
		{ID: 3, PaymentStatus: models.PaymentPaid, PaymentAmount: 500,
			CreatedAt: time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC),
			CheckIn:   mustUTC(2024, 6, 20), CheckOut: mustUTC(2024, 6, 22)},
		{ID: 4, PaymentStatus: models.PaymentPaid, PaymentAmount: 900,
			CreatedAt: mustUTC(2024, 6, 11),
			CheckIn:   mustUTC(2024, 6, 20), CheckOut: mustUTC(2024, 6, 22)},
	}
	deriveStatuses(bookings, now)

	stats := buildStats(nil, bookings, 0, now)

	if stats.PaymentsPending != 1 {
		t.Fatalf("cancelled bookings must not count as pending: %+v", stats)
	}
	if stats.PaidToday != 500 {
		t.Fatalf("paid today should cover only today's payments: got %v", stats.PaidToday)
	}
}

func TestRecentBookingsNewestFirstCapped(t *testing.T) {
	var bookings []models.Booking
	for i := 1; i <= 8; i++ {
		bookings = append(bookings, models.Booking{
			ID:        int64(i),
			CreatedAt: mustUTC(2024, 6, i),
		})
	}

	recent := recentBookings(bookings, 5)
	if len(recent) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Fatalf("rows not ordered newest first: %v", recent)
		}
	}
	if recent[0].ID != 8 {
		t.Fatalf("newest booking missing, got id %d", recent[0].ID)
	}
	// Input order untouched.
	if bookings[0].ID != 1 {
		t.Fatalf("input slice was reordered")
	}
}
