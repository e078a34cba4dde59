package services

import (
	"strings"
	"testing"

	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/export"
)

func TestNormalizeGuest(t *testing.T) {
	in := models.Guest{
		FullName: "  Иванов   Иван ",
		INN:      "12-34 5678",
		Phone:    " +7 900 ",
	}
	out, err := normalizeGuest(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FullName != "Иванов Иван" {
		t.Fatalf("name not normalized: %q", out.FullName)
	}
	if out.INN != "12345678" {
		t.Fatalf("inn should keep digits only: %q", out.INN)
	}
	if out.Status != models.GuestActive {
		t.Fatalf("status should default to active, got %q", out.Status)
	}
	if out.PeopleCount != 1 {
		t.Fatalf("people count should default to 1, got %d", out.PeopleCount)
	}
}

func TestNormalizeGuestRejectsBadInput(t *testing.T) {
	if _, err := normalizeGuest(models.Guest{FullName: "   "}); !domain.IsValidation(err) {
		t.Fatalf("empty name should fail validation, got %v", err)
	}
	if _, err := normalizeGuest(models.Guest{FullName: "A", Status: "gold"}); !domain.IsValidation(err) {
		t.Fatalf("unknown status should fail validation, got %v", err)
	}
}

func TestGuestExportRowsMatchHeaders(t *testing.T) {
	guests := []models.Guest{
		{
			ID:               3,
			FullName:         "Сидорова, Анна",
			INN:              "123456789012",
			Phone:            "+79001112233",
			Status:           models.GuestVIP,
			VisitsCount:      7,
			TotalSpent:       15000.50,
			RegistrationDate: mustUTC(2024, 1, 15),
		},
	}

	rows := guestExportRows(guests)
	if len(rows) != 1 || len(rows[0]) != len(guestExportHeaders()) {
		t.Fatalf("row shape mismatch: %v", rows)
	}
	if rows[0][6] != "15000.5" {
		t.Fatalf("amount should use the plain decimal form, got %q", rows[0][6])
	}
	if rows[0][7] != "2024-01-15" {
		t.Fatalf("registration date format: %q", rows[0][7])
	}

	// A comma inside the name survives because every field is quoted.
	content := export.Serialize(guestExportHeaders(), rows)
	if !strings.Contains(content, `"Сидорова, Анна"`) {
		t.Fatalf("quoted name missing: %s", content)
	}
}
