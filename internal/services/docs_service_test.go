package services

import (
	"strings"
	"testing"
	"time"
)

func TestDocsServiceGenerateConfirmation(t *testing.T) {
	loader := func(id int64) (bookingDocData, error) {
		return bookingDocData{
			BookingID:     id,
			ReferenceCode: "9f8d2c1a",
			GuestName:     "Ivanov Ivan",
			GuestPhone:    "+7 900 000-00-00",
			RoomNumber:    "101",
			BuildingName:  "Main",
			RoomClass:     "standard",
			CheckIn:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
			PeopleCount:   2,
			TotalAmount:   30000,
			PaymentStatus: "paid",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateConfirmation(7)
	if err != nil {
		t.Fatalf("GenerateConfirmation returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateConfirmation returned empty data")
	}
	if !strings.HasPrefix(filename, "BOOKING_7_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
	if strings.ContainsAny(filename, " /") {
		t.Fatalf("filename not sanitized: %q", filename)
	}
}
