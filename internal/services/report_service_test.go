package services

import (
	"strings"
	"testing"

	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/export"
)

func sampleReportBooking() models.Booking {
	return models.Booking{
		ID:          1,
		RoomID:      10,
		GuestID:     20,
		RoomNumber:  "101",
		GuestName:   "Петров Пётр",
		GuestPhone:  "+79000000000",
		GuestINN:    "123456789012",
		CheckIn:     mustUTC(2024, 6, 10),
		CheckOut:    mustUTC(2024, 6, 13),
		PeopleCount: 2,
		Status:      models.BookingActive,
	}
}

func TestMatchesFilterSearch(t *testing.T) {
	b := sampleReportBooking()
	room := models.Room{ID: 10, BuildingID: 3}

	if !matchesFilter(b, room, ReportFilter{Search: "петров"}) {
		t.Fatalf("name search should be case-insensitive")
	}
	if !matchesFilter(b, room, ReportFilter{Search: "123456789012"}) {
		t.Fatalf("tax number search failed")
	}
	if matchesFilter(b, room, ReportFilter{Search: "сидоров"}) {
		t.Fatalf("non-matching search should drop the row")
	}
}

func TestMatchesFilterDatesAndIDs(t *testing.T) {
	b := sampleReportBooking()
	room := models.Room{ID: 10, BuildingID: 3}

	if !matchesFilter(b, room, ReportFilter{DateFrom: mustUTC(2024, 6, 1), DateTo: mustUTC(2024, 6, 30)}) {
		t.Fatalf("booking inside range should match")
	}
	if matchesFilter(b, room, ReportFilter{DateFrom: mustUTC(2024, 6, 11)}) {
		t.Fatalf("check-in before date_from should not match")
	}
	if matchesFilter(b, room, ReportFilter{DateTo: mustUTC(2024, 6, 12)}) {
		t.Fatalf("check-out after date_to should not match")
	}
	if !matchesFilter(b, room, ReportFilter{RoomID: 10, GuestID: 20, BuildingID: 3}) {
		t.Fatalf("id filters should match")
	}
	if matchesFilter(b, room, ReportFilter{BuildingID: 4}) {
		t.Fatalf("building filter should use the room's building")
	}
}

func TestMatchesFilterStatus(t *testing.T) {
	b := sampleReportBooking()
	if !matchesFilter(b, models.Room{}, ReportFilter{Status: models.BookingActive}) {
		t.Fatalf("status filter should match derived status")
	}
	if matchesFilter(b, models.Room{}, ReportFilter{Status: models.BookingCancelled}) {
		t.Fatalf("status mismatch should drop the row")
	}
}

func TestPageClampsToRange(t *testing.T) {
	rows := make([]models.Booking, 45)
	for i := range rows {
		rows[i].ID = int64(i + 1)
	}

	page, p := Page(rows, domain.Pagination{Page: 3, PageSize: 20})
	if p.Total != 45 || len(page) != 5 {
		t.Fatalf("last page should hold the remainder: len=%d total=%d", len(page), p.Total)
	}
	if page[0].ID != 41 {
		t.Fatalf("wrong window start: %d", page[0].ID)
	}

	// Past the end is empty, not an error.
	page, _ = Page(rows, domain.Pagination{Page: 9, PageSize: 20})
	if len(page) != 0 {
		t.Fatalf("out-of-range page should be empty, got %d rows", len(page))
	}

	// Defaults apply for zero params.
	page, p = Page(rows, domain.Pagination{})
	if p.Page != 1 || p.PageSize != 20 || len(page) != 20 {
		t.Fatalf("defaults not applied: %+v len=%d", p, len(page))
	}
}

func TestReportRowsShapeMatchesHeaders(t *testing.T) {
	b := sampleReportBooking()
	byRoom := map[int64]models.Room{
		10: {ID: 10, RoomClass: models.RoomClassLux, RoomType: "double", PricePerNight: 150.5},
	}

	rows := reportRows([]models.Booking{b}, byRoom)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if len(rows[0]) != len(reportHeaders()) {
		t.Fatalf("row width %d does not match header width %d", len(rows[0]), len(reportHeaders()))
	}
	if rows[0][3] != "lux" || rows[0][12] != "150.5" {
		t.Fatalf("room fields not flattened: %v", rows[0])
	}

	// A booking pointing at a vanished room renders placeholders, not blanks.
	orphan := b
	orphan.RoomID = 99
	orphan.RoomNumber = ""
	orphanRows := reportRows([]models.Booking{orphan}, byRoom)
	if orphanRows[0][1] != "—" || orphanRows[0][3] != "—" || orphanRows[0][12] != "—" {
		t.Fatalf("missing room should render dashes: %v", orphanRows[0])
	}

	// The serialized form stays parseable despite Cyrillic values.
	content := export.Serialize(reportHeaders(), rows)
	if !strings.Contains(content, `"Петров Пётр"`) {
		t.Fatalf("guest name missing from export: %s", content)
	}
	if strings.HasSuffix(content, "\n") {
		t.Fatalf("export must not end with a newline")
	}
}
