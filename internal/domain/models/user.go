package models

import "time"

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
)

// OnlineWindow is how recently a user must have been seen to count as online.
const OnlineWindow = 5 * time.Minute

// User is a staff account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone"`
	LastSeen     time.Time `json:"last_seen"`
	CreatedAt    time.Time `json:"created_at"`

	// Derived at read time, same rule as booking status.
	IsOnline bool `json:"is_online"`
}

// Online reports whether the user was active within OnlineWindow of now.
func (u User) Online(now time.Time) bool {
	return !u.LastSeen.Before(now.Add(-OnlineWindow))
}
