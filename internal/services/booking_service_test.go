package services

import (
	"testing"
	"time"

	"femida/internal/domain"
	"femida/internal/domain/models"
)

func mustUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateBookingCheckOutMustFollowCheckIn(t *testing.T) {
	b := models.Booking{
		GuestID:     1,
		RoomID:      1,
		PeopleCount: 2,
		CheckIn:     mustUTC(2024, 6, 13),
		CheckOut:    mustUTC(2024, 6, 10),
	}
	if err := validateBooking(b); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for inverted dates, got %v", err)
	}

	b.CheckOut = b.CheckIn
	if err := validateBooking(b); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for zero-length stay, got %v", err)
	}

	b.CheckOut = mustUTC(2024, 6, 15)
	if err := validateBooking(b); err != nil {
		t.Fatalf("expected valid booking, got %v", err)
	}
}

func TestValidateBookingPeopleCount(t *testing.T) {
	b := models.Booking{
		GuestID:  1,
		RoomID:   1,
		CheckIn:  mustUTC(2024, 6, 10),
		CheckOut: mustUTC(2024, 6, 13),
	}
	if err := validateBooking(b); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for zero people, got %v", err)
	}
}

func TestFindOverlapBackToBackStaysDoNotConflict(t *testing.T) {
	existing := []models.Booking{
		{ID: 1, CheckIn: mustUTC(2024, 6, 10), CheckOut: mustUTC(2024, 6, 13)},
	}
	// New stay starts exactly at the old checkout instant.
	candidate := models.Booking{ID: 2, CheckIn: mustUTC(2024, 6, 13), CheckOut: mustUTC(2024, 6, 15)}
	if id, clash := findOverlap(existing, candidate); clash {
		t.Fatalf("back-to-back stays should not conflict, clashed with %d", id)
	}
}

func TestFindOverlapDetectsIntersection(t *testing.T) {
	existing := []models.Booking{
		{ID: 1, CheckIn: mustUTC(2024, 6, 10), CheckOut: mustUTC(2024, 6, 13)},
	}
	candidate := models.Booking{ID: 2, CheckIn: mustUTC(2024, 6, 12), CheckOut: mustUTC(2024, 6, 15)}
	id, clash := findOverlap(existing, candidate)
	if !clash || id != 1 {
		t.Fatalf("expected clash with booking 1, got id=%d clash=%v", id, clash)
	}
}

func TestFindOverlapSkipsCancelledAndSelf(t *testing.T) {
	existing := []models.Booking{
		{ID: 1, CheckIn: mustUTC(2024, 6, 10), CheckOut: mustUTC(2024, 6, 13), Cancelled: true},
		{ID: 2, CheckIn: mustUTC(2024, 6, 11), CheckOut: mustUTC(2024, 6, 14)},
	}
	// Same dates as row 2; it is row 2 being edited.
	candidate := models.Booking{ID: 2, CheckIn: mustUTC(2024, 6, 11), CheckOut: mustUTC(2024, 6, 14)}
	if id, clash := findOverlap(existing, candidate); clash {
		t.Fatalf("cancelled rows and the row itself should be skipped, clashed with %d", id)
	}
}

func TestComputeTotal(t *testing.T) {
	checkIn := mustUTC(2024, 6, 10)

	if got := computeTotal(checkIn, mustUTC(2024, 6, 13), 100); got != 300 {
		t.Fatalf("3 nights at 100: got %v want 300", got)
	}
	// Checkout at noon on the third day still counts the started night.
	if got := computeTotal(checkIn, time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC), 100); got != 300 {
		t.Fatalf("partial night should round up: got %v want 300", got)
	}
	// A short stay never costs less than one night.
	if got := computeTotal(checkIn, checkIn.Add(2*time.Hour), 100); got != 100 {
		t.Fatalf("minimum one night: got %v want 100", got)
	}
}

func TestDeriveStatusesFillsEveryRow(t *testing.T) {
	now := mustUTC(2024, 6, 12)
	bookings := []models.Booking{
		{CheckIn: mustUTC(2024, 6, 13), CheckOut: mustUTC(2024, 6, 15)},
		{CheckIn: mustUTC(2024, 6, 10), CheckOut: mustUTC(2024, 6, 13)},
		{CheckIn: mustUTC(2024, 6, 1), CheckOut: mustUTC(2024, 6, 5)},
		{CheckIn: mustUTC(2024, 6, 10), CheckOut: mustUTC(2024, 6, 13), Cancelled: true},
	}
	deriveStatuses(bookings, now)

	want := []models.BookingStatus{
		models.BookingUpcoming,
		models.BookingActive,
		models.BookingCompleted,
		models.BookingCancelled,
	}
	for i, b := range bookings {
		if b.Status != want[i] {
			t.Fatalf("booking %d: got %s want %s", i, b.Status, want[i])
		}
	}
}
