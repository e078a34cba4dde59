package models

import "time"

// BookingStatus is display state derived from "now" against the booking's
// half-open [check_in, check_out) interval. Only cancellation is stored; the
// other states would go stale in a long-lived dashboard if persisted.
type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "upcoming"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentUnpaid  PaymentStatus = "unpaid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentUnpaid:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "transfer"
	PayOnline   PaymentMethod = "online"
	PayOther    PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayTransfer, PayOnline, PayOther:
		return true
	}
	return false
}

type Booking struct {
	ID            int64         `json:"id"`
	ReferenceCode string        `json:"reference_code"`
	GuestID       int64         `json:"guest_id"`
	RoomID        int64         `json:"room_id"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	PeopleCount   int           `json:"people_count"`
	Cancelled     bool          `json:"cancelled"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentAmount float64       `json:"payment_amount"`
	TotalAmount   float64       `json:"total_amount"`
	Comments      string        `json:"comments"`
	CreatedBy     int64         `json:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	IsDeleted     bool          `json:"-"`

	// Joined display fields, filled by list queries.
	RoomNumber   string `json:"room_number,omitempty"`
	BuildingName string `json:"building_name,omitempty"`
	GuestName    string `json:"guest_name,omitempty"`
	GuestPhone   string `json:"guest_phone,omitempty"`
	GuestINN     string `json:"guest_inn,omitempty"`

	// Derived at read time, never persisted.
	Status BookingStatus `json:"status,omitempty"`
}
