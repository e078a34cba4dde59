package services

import (
	"fmt"
	"strconv"
	"time"

	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/export"
	"femida/internal/repositories"
	"femida/internal/utils"
)

type GuestService struct {
	GuestRepo repositories.GuestRepository
	AuditRepo repositories.AuditRepository
	RequestID string
}

func (s GuestService) List() ([]models.Guest, error) {
	return s.GuestRepo.List()
}

func (s GuestService) Get(id int64) (models.Guest, error) {
	return s.GuestRepo.GetByID(id)
}

func (s GuestService) Create(in models.Guest, userID int64) (models.Guest, error) {
	in, err := normalizeGuest(in)
	if err != nil {
		return in, err
	}
	if in.RegistrationDate.IsZero() {
		in.RegistrationDate = utils.DayUTC(utils.NowUTC())
	}
	created, err := s.GuestRepo.Create(in)
	if err != nil {
		return created, err
	}
	s.audit(userID, models.AuditCreate, created.ID, created.FullName)
	utils.LogEvent(s.RequestID, "guests", "create", fmt.Sprintf("id=%d", created.ID))
	return created, nil
}

func (s GuestService) Update(in models.Guest, userID int64) error {
	in, err := normalizeGuest(in)
	if err != nil {
		return err
	}
	if err := s.GuestRepo.Update(in); err != nil {
		return err
	}
	s.audit(userID, models.AuditUpdate, in.ID, in.FullName)
	utils.LogEvent(s.RequestID, "guests", "update", fmt.Sprintf("id=%d", in.ID))
	return nil
}

func (s GuestService) SoftDelete(id, userID int64) error {
	if err := s.GuestRepo.SoftDelete(id); err != nil {
		return err
	}
	s.audit(userID, models.AuditDelete, id, "")
	utils.LogEvent(s.RequestID, "guests", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func (s GuestService) Restore(id, userID int64) error {
	if err := s.GuestRepo.Restore(id); err != nil {
		return err
	}
	s.audit(userID, models.AuditRestore, id, "")
	utils.LogEvent(s.RequestID, "guests", "restore", fmt.Sprintf("id=%d", id))
	return nil
}

// ExportCSV renders the guest list for download. Output is deterministic for
// the same data and day.
func (s GuestService) ExportCSV(now time.Time) (string, string, error) {
	guests, err := s.GuestRepo.List()
	if err != nil {
		return "", "", err
	}
	content := export.Serialize(guestExportHeaders(), guestExportRows(guests))
	return content, export.Filename("guests", now), nil
}

func guestExportHeaders() []string {
	return []string{"ID", "ФИО", "ИНН", "Телефон", "Статус", "Посещений", "Оплачено", "Дата регистрации"}
}

func guestExportRows(guests []models.Guest) [][]string {
	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, []string{
			strconv.FormatInt(g.ID, 10),
			g.FullName,
			g.INN,
			g.Phone,
			string(g.Status),
			strconv.Itoa(g.VisitsCount),
			utils.FormatAmount(g.TotalSpent),
			utils.FormatDate(g.RegistrationDate),
		})
	}
	return rows
}

func normalizeGuest(g models.Guest) (models.Guest, error) {
	g.FullName = utils.NormalizeSpace(g.FullName)
	if g.FullName == "" {
		return g, domain.ValidationError{Field: "full_name", Msg: "required"}
	}
	g.Phone = utils.TrimOrEmpty(g.Phone)
	g.INN = utils.DigitsOnly(g.INN)
	if g.PeopleCount <= 0 {
		g.PeopleCount = 1
	}
	if g.Status == "" {
		g.Status = models.GuestActive
	}
	if !g.Status.Valid() {
		return g, domain.ValidationError{Field: "status", Msg: "unknown value"}
	}
	return g, nil
}

func (s GuestService) audit(userID int64, action string, objectID int64, details string) {
	_ = s.AuditRepo.Insert(models.AuditLog{
		UserID:     userID,
		Action:     action,
		ObjectType: "guest",
		ObjectID:   objectID,
		Details:    details,
	})
}
