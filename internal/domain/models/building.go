package models

// Building groups rooms under one address. Name and address are unique.
type Building struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}
