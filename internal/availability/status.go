// Package availability derives booking and room state from the clock and
// lays out the calendar and room/day grids the dashboard renders. Everything
// here is a pure function over collections already loaded elsewhere: the
// status of a booking can flip from active to completed just by wall-clock
// time advancing, so callers re-derive on every read instead of caching.
package availability

import (
	"time"

	"femida/internal/domain/models"
)

// BookingStatus derives display status from the half-open interval
// [checkIn, checkOut): check-in inclusive, check-out exclusive. Cancellation
// wins over dates. A zero or negative-length interval is never active.
func BookingStatus(now, checkIn, checkOut time.Time, cancelled bool) models.BookingStatus {
	if cancelled {
		return models.BookingCancelled
	}
	if now.Before(checkIn) {
		return models.BookingUpcoming
	}
	if now.Before(checkOut) {
		return models.BookingActive
	}
	return models.BookingCompleted
}

// StatusOf derives the display status of a booking.
func StatusOf(b models.Booking, now time.Time) models.BookingStatus {
	return BookingStatus(now, b.CheckIn, b.CheckOut, b.Cancelled)
}

// RoomOccupancy derives a room's occupancy. The manual maintenance flag
// overrides bookings; otherwise any active booking makes the room occupied.
func RoomOccupancy(maintenance bool, bookings []models.Booking, now time.Time) models.RoomOccupancy {
	if maintenance {
		return models.RoomUnavailable
	}
	for _, b := range bookings {
		if b.IsDeleted {
			continue
		}
		if StatusOf(b, now) == models.BookingActive {
			return models.RoomOccupied
		}
	}
	return models.RoomFree
}
