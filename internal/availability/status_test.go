package availability

import (
	"testing"
	"time"

	"femida/internal/domain/models"
)

var (
	checkIn  = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		now  time.Time
		want models.BookingStatus
	}{
		{time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC), models.BookingUpcoming},
		{checkIn, models.BookingActive}, // check-in inclusive
		{time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), models.BookingActive},
		{checkOut, models.BookingCompleted}, // check-out exclusive
		{checkOut.Add(time.Hour), models.BookingCompleted},
	}
	for _, tc := range cases {
		got := BookingStatus(tc.now, checkIn, checkOut, false)
		if got != tc.want {
			t.Fatalf("status at %v = %s, want %s", tc.now, got, tc.want)
		}
	}
}

func TestBookingStatusCancelledWinsOverDates(t *testing.T) {
	for _, now := range []time.Time{
		checkIn.Add(-time.Hour),
		checkIn.Add(time.Hour),
		checkOut.Add(time.Hour),
	} {
		if got := BookingStatus(now, checkIn, checkOut, true); got != models.BookingCancelled {
			t.Fatalf("cancelled booking at %v derived %s", now, got)
		}
	}
}

// Sweeping now across the interval must produce upcoming, active, completed
// exactly once each, in that order, never skipping or repeating.
func TestBookingStatusMonotonic(t *testing.T) {
	var seen []models.BookingStatus
	for now := checkIn.Add(-48 * time.Hour); now.Before(checkOut.Add(48 * time.Hour)); now = now.Add(time.Hour) {
		s := BookingStatus(now, checkIn, checkOut, false)
		if len(seen) == 0 || seen[len(seen)-1] != s {
			seen = append(seen, s)
		}
	}
	want := []models.BookingStatus{models.BookingUpcoming, models.BookingActive, models.BookingCompleted}
	if len(seen) != len(want) {
		t.Fatalf("transition sequence %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("transition sequence %v, want %v", seen, want)
		}
	}
}

func TestBookingStatusZeroLengthNeverActive(t *testing.T) {
	at := checkIn
	if got := BookingStatus(at.Add(-time.Minute), at, at, false); got != models.BookingUpcoming {
		t.Fatalf("before zero-length interval: %s", got)
	}
	if got := BookingStatus(at, at, at, false); got != models.BookingCompleted {
		t.Fatalf("at zero-length interval boundary: %s", got)
	}
}

func TestRoomOccupancy(t *testing.T) {
	now := time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC)
	booking := models.Booking{RoomID: 1, CheckIn: checkIn, CheckOut: checkOut}

	if got := RoomOccupancy(false, []models.Booking{booking}, now); got != models.RoomOccupied {
		t.Fatalf("active booking should occupy room, got %s", got)
	}
	if got := RoomOccupancy(true, []models.Booking{booking}, now); got != models.RoomUnavailable {
		t.Fatalf("maintenance must override bookings, got %s", got)
	}
	if got := RoomOccupancy(false, []models.Booking{booking}, checkOut); got != models.RoomFree {
		t.Fatalf("room should be free at checkout instant, got %s", got)
	}

	cancelled := booking
	cancelled.Cancelled = true
	if got := RoomOccupancy(false, []models.Booking{cancelled}, now); got != models.RoomFree {
		t.Fatalf("cancelled booking should not occupy room, got %s", got)
	}
}
