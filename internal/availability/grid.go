package availability

import (
	"time"

	"femida/internal/domain/models"
	"femida/internal/utils"
)

// DefaultPageSize is how many days the room/day table shows per page.
const DefaultPageSize = 14

// MonthCell is one slot of a month grid row. Leading/trailing padding cells
// have Empty set and no day number; days from adjacent months never leak in.
type MonthCell struct {
	Empty    bool             `json:"empty"`
	Day      int              `json:"day,omitempty"`
	Bookings []models.Booking `json:"bookings,omitempty"`
}

// MonthGrid is a Monday-first calendar: every week row has exactly 7 cells.
type MonthGrid struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Weeks [][7]MonthCell  `json:"weeks"`
}

// BuildMonthGrid lays out the given month and fills each day cell from the
// index. Deterministic and read-only over its inputs.
func BuildMonthGrid(year int, month time.Month, ix *Index) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday is Sunday-based; shift so Monday is column 0.
	offset := (int(first.Weekday()) + 6) % 7

	grid := MonthGrid{Year: year, Month: month}

	var week [7]MonthCell
	col := 0
	for ; col < offset; col++ {
		week[col] = MonthCell{Empty: true}
	}

	for day := 1; day <= daysInMonth; day++ {
		week[col] = MonthCell{
			Day:      day,
			Bookings: ix.TouchingDay(first.AddDate(0, 0, day-1)),
		}
		col++
		if col == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = [7]MonthCell{}
			col = 0
		}
	}

	if col > 0 {
		for ; col < 7; col++ {
			week[col] = MonthCell{Empty: true}
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}

// RoomDayCell resolves to at most one booking per (room, day).
type RoomDayCell struct {
	Booking *models.Booking `json:"booking,omitempty"`
}

type RoomDayRow struct {
	Room  models.Room   `json:"room"`
	Cells []RoomDayCell `json:"cells"`
}

// RoomDayGrid is one page of the room-by-day table.
type RoomDayGrid struct {
	Days    []time.Time  `json:"days"`
	Rows    []RoomDayRow `json:"rows"`
	Offset  int          `json:"offset"`
	Total   int          `json:"total_days"`
	HasPrev bool         `json:"has_prev"`
	HasNext bool         `json:"has_next"`
}

// ClampOffset keeps the window inside the day range so the trailing page is
// never shorter than it has to be: offset = min(offset, max(0, total-size)).
func ClampOffset(offset, totalDays, pageSize int) int {
	max := totalDays - pageSize
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// BuildRoomDayGrid slices a pageSize window of days starting at offset
// (clamped) and resolves one cell per (room, day) via the index.
func BuildRoomDayGrid(rooms []models.Room, from, to time.Time, offset, pageSize int, ix *Index) RoomDayGrid {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	days := utils.DaysBetween(from, to)
	offset = ClampOffset(offset, len(days), pageSize)

	end := offset + pageSize
	if end > len(days) {
		end = len(days)
	}
	window := days[offset:end]

	grid := RoomDayGrid{
		Days:    window,
		Offset:  offset,
		Total:   len(days),
		HasPrev: offset > 0,
		HasNext: end < len(days),
	}

	for _, room := range rooms {
		row := RoomDayRow{Room: room, Cells: make([]RoomDayCell, len(window))}
		for i, day := range window {
			if b, ok := ix.ForRoomOnDay(room.ID, day); ok {
				booking := b
				row.Cells[i] = RoomDayCell{Booking: &booking}
			}
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}
