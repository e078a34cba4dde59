package availability

import (
	"sort"
	"time"

	"femida/internal/domain/models"

	"femida/internal/utils"
)

// Index answers "which bookings touch day D" and "which booking covers room
// R on day D" over an already-loaded booking list. It never mutates its
// input. Overlapping bookings for one room are a backend-side inconsistency;
// the index tolerates them and renders all matches.
type Index struct {
	all    []models.Booking
	byRoom map[int64][]models.Booking
}

// NewIndex builds an index keyed by room id, each bucket sorted by check-in.
// The flat list keeps insertion order for day queries.
func NewIndex(bookings []models.Booking) *Index {
	ix := &Index{
		all:    bookings,
		byRoom: make(map[int64][]models.Booking),
	}
	for _, b := range bookings {
		ix.byRoom[b.RoomID] = append(ix.byRoom[b.RoomID], b)
	}
	for roomID := range ix.byRoom {
		bucket := ix.byRoom[roomID]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CheckIn.Before(bucket[j].CheckIn)
		})
	}
	return ix
}

// touchesDay reports whether [checkIn, checkOut) intersects the UTC day
// [day 00:00, day+24h). Both intervals half-open.
func touchesDay(checkIn, checkOut, day time.Time) bool {
	dayStart := utils.DayUTC(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	return checkIn.Before(dayEnd) && checkOut.After(dayStart)
}

// TouchingDay returns all bookings whose interval includes the given day, in
// insertion order.
func (ix *Index) TouchingDay(day time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range ix.all {
		if touchesDay(b.CheckIn, b.CheckOut, day) {
			out = append(out, b)
		}
	}
	return out
}

// ForRoomOnDay returns the booking covering the room on the given day. When
// overlapping bookings exist the first by check-in wins; that is an anomaly
// policy for inconsistent data, not a correctness guarantee.
func (ix *Index) ForRoomOnDay(roomID int64, day time.Time) (models.Booking, bool) {
	for _, b := range ix.byRoom[roomID] {
		if touchesDay(b.CheckIn, b.CheckOut, day) {
			return b, true
		}
	}
	return models.Booking{}, false
}

// ForRoom returns the room's bucket sorted by check-in.
func (ix *Index) ForRoom(roomID int64) []models.Booking {
	return ix.byRoom[roomID]
}
