package models

import "time"

type GuestStatus string

const (
	GuestActive    GuestStatus = "active"
	GuestInactive  GuestStatus = "inactive"
	GuestVIP       GuestStatus = "vip"
	GuestBlacklist GuestStatus = "blacklist"
)

func (s GuestStatus) Valid() bool {
	switch s {
	case GuestActive, GuestInactive, GuestVIP, GuestBlacklist:
		return true
	}
	return false
}

// Guest exists independently of bookings; a guest with zero bookings is fine.
type Guest struct {
	ID               int64       `json:"id"`
	FullName         string      `json:"full_name"`
	Phone            string      `json:"phone"`
	Email            string      `json:"email"`
	Address          string      `json:"address"`
	PeopleCount      int         `json:"people_count"`
	Notes            string      `json:"notes"`
	INN              string      `json:"inn"`
	RegistrationDate time.Time   `json:"registration_date"`
	TotalSpent       float64     `json:"total_spent"`
	VisitsCount      int         `json:"visits_count"`
	Status           GuestStatus `json:"status"`
	IsDeleted        bool        `json:"-"`
}
