package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"femida/internal/repositories"
	"femida/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking confirmation PDF handed to the guest at
// check-in. Loader overrides data access in tests.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RoomRepo    repositories.RoomRepository
	RequestID   string
	Loader      func(int64) (bookingDocData, error)
}

type bookingDocData struct {
	BookingID     int64
	ReferenceCode string
	GuestName     string
	GuestPhone    string
	RoomNumber    string
	BuildingName  string
	RoomClass     string
	CheckIn       time.Time
	CheckOut      time.Time
	PeopleCount   int
	TotalAmount   float64
	PaymentStatus string
}

func (s DocsService) GenerateConfirmation(bookingID int64) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", bookingID))
	return buildConfirmationPDF(data)
}

func (s DocsService) loadBookingDocData(bookingID int64) (bookingDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	var out bookingDocData
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return out, err
	}
	out.BookingID = b.ID
	out.ReferenceCode = b.ReferenceCode
	out.GuestName = b.GuestName
	out.GuestPhone = b.GuestPhone
	out.RoomNumber = b.RoomNumber
	out.BuildingName = b.BuildingName
	out.CheckIn = b.CheckIn
	out.CheckOut = b.CheckOut
	out.PeopleCount = b.PeopleCount
	out.TotalAmount = b.TotalAmount
	out.PaymentStatus = string(b.PaymentStatus)

	if room, err := s.RoomRepo.GetByID(b.RoomID); err == nil {
		out.RoomClass = string(room.RoomClass)
	}
	return out, nil
}

func buildConfirmationPDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", safe(d.ReferenceCode, "-")),
		fmt.Sprintf("Guest          : %s", safe(d.GuestName, "-")),
		fmt.Sprintf("Phone          : %s", safe(d.GuestPhone, "-")),
		fmt.Sprintf("Building       : %s", safe(d.BuildingName, "-")),
		fmt.Sprintf("Room           : %s (%s)", safe(d.RoomNumber, "-"), safe(d.RoomClass, "-")),
		fmt.Sprintf("Check-in       : %s", utils.FormatDate(d.CheckIn)),
		fmt.Sprintf("Check-out      : %s", utils.FormatDate(d.CheckOut)),
		fmt.Sprintf("Guests         : %d", d.PeopleCount),
		fmt.Sprintf("Total          : %s", utils.FormatAmountDisplay(d.TotalAmount)),
		fmt.Sprintf("Payment        : %s", safe(d.PaymentStatus, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Check-in starts at 14:00, check-out is before 12:00. Please present this confirmation at the reception.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_%d_%s.pdf", d.BookingID, safeFilenamePart(d.GuestName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
