package models

// RoomClass is the comfort tier of a room.
type RoomClass string

const (
	RoomClassStandard RoomClass = "standard"
	RoomClassSemiLux  RoomClass = "semi_lux"
	RoomClassLux      RoomClass = "lux"
)

func (c RoomClass) Valid() bool {
	switch c {
	case RoomClassStandard, RoomClassSemiLux, RoomClassLux:
		return true
	}
	return false
}

// RoomOccupancy is never stored; it is derived from the maintenance flag and
// the room's bookings at read time.
type RoomOccupancy string

const (
	RoomFree        RoomOccupancy = "free"
	RoomOccupied    RoomOccupancy = "occupied"
	RoomUnavailable RoomOccupancy = "unavailable"
)

type Room struct {
	ID            int64     `json:"id"`
	BuildingID    int64     `json:"building_id"`
	BuildingName  string    `json:"building_name,omitempty"`
	Number        string    `json:"number"`
	Capacity      int       `json:"capacity"`
	RoomType      string    `json:"room_type"`
	RoomClass     RoomClass `json:"room_class"`
	Maintenance   bool      `json:"maintenance"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	RoomsCount    int       `json:"rooms_count"`
	Amenities     string    `json:"amenities"`
	IsDeleted     bool      `json:"-"`

	// Derived at read time, never persisted.
	Occupancy RoomOccupancy `json:"status,omitempty"`
}
