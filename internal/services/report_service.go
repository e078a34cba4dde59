package services

import (
	"strconv"
	"strings"
	"time"

	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/export"
	"femida/internal/repositories"
	"femida/internal/utils"
)

type ReportService struct {
	BookingRepo repositories.BookingRepository
	RoomRepo    repositories.RoomRepository
	RequestID   string
}

// ReportFilter narrows the booking report. Zero values mean "no filter";
// search matches guest name, phone or tax number.
type ReportFilter struct {
	Search        string
	DateFrom      time.Time
	DateTo        time.Time
	RoomID        int64
	GuestID       int64
	BuildingID    int64
	Status        models.BookingStatus
	PaymentStatus models.PaymentStatus
}

// Rows returns the filtered bookings with statuses derived against now.
func (s ReportService) Rows(filter ReportFilter, now time.Time) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.List()
	if err != nil {
		return nil, err
	}
	deriveStatuses(bookings, now)

	rooms, err := s.RoomRepo.List(0)
	if err != nil {
		return nil, err
	}
	byRoom := roomsByID(rooms)

	var out []models.Booking
	for _, b := range bookings {
		if matchesFilter(b, byRoom[b.RoomID], filter) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Page slices one page out of the filtered rows. Page numbers start at 1;
// out-of-range pages come back empty rather than erroring.
func Page(rows []models.Booking, p domain.Pagination) ([]models.Booking, domain.Pagination) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	p.Total = len(rows)

	start := (p.Page - 1) * p.PageSize
	if start >= len(rows) {
		return nil, p
	}
	end := start + p.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], p
}

// ExportCSV renders the filtered report for download.
func (s ReportService) ExportCSV(filter ReportFilter, now time.Time) (string, string, error) {
	bookings, err := s.Rows(filter, now)
	if err != nil {
		return "", "", err
	}
	rooms, err := s.RoomRepo.List(0)
	if err != nil {
		return "", "", err
	}
	byRoom := roomsByID(rooms)

	utils.LogEvent(s.RequestID, "reports", "export", strconv.Itoa(len(bookings))+" rows")
	content := export.Serialize(reportHeaders(), reportRows(bookings, byRoom))
	return content, export.Filename("report", now), nil
}

func reportHeaders() []string {
	return []string{
		"ID", "Комната", "Корпус", "Класс", "Тип", "Статус", "Гость",
		"Телефон", "ИНН", "Дата заезда", "Дата выезда", "Кол-во гостей", "Цена за ночь",
	}
}

func reportRows(bookings []models.Booking, byRoom map[int64]models.Room) [][]string {
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		room, ok := byRoom[b.RoomID]
		class, roomType, price := "—", "—", "—"
		if ok {
			class = string(room.RoomClass)
			roomType = room.RoomType
			price = utils.FormatAmount(room.PricePerNight)
		}
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			orDash(b.RoomNumber),
			orDash(b.BuildingName),
			class,
			roomType,
			string(b.Status),
			orDash(b.GuestName),
			orDash(b.GuestPhone),
			orDash(b.GuestINN),
			utils.FormatDate(b.CheckIn),
			utils.FormatDate(b.CheckOut),
			strconv.Itoa(b.PeopleCount),
			price,
		})
	}
	return rows
}

// orDash keeps missing relations visible in exports instead of blank cells.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func roomsByID(rooms []models.Room) map[int64]models.Room {
	out := make(map[int64]models.Room, len(rooms))
	for _, r := range rooms {
		out[r.ID] = r
	}
	return out
}

func matchesFilter(b models.Booking, room models.Room, f ReportFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(b.GuestName), q) &&
			!strings.Contains(b.GuestPhone, f.Search) &&
			!strings.Contains(b.GuestINN, f.Search) {
			return false
		}
	}
	if !f.DateFrom.IsZero() && b.CheckIn.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && b.CheckOut.After(f.DateTo) {
		return false
	}
	if f.RoomID > 0 && b.RoomID != f.RoomID {
		return false
	}
	if f.GuestID > 0 && b.GuestID != f.GuestID {
		return false
	}
	if f.BuildingID > 0 && room.BuildingID != f.BuildingID {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.PaymentStatus != "" && b.PaymentStatus != f.PaymentStatus {
		return false
	}
	return true
}
