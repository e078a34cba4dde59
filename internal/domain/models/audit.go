package models

import "time"

// AuditLog records who changed what. UserID is zero for system actions.
type AuditLog struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id,omitempty"`
	Action     string    `json:"action"`
	ObjectType string    `json:"object_type"`
	ObjectID   int64     `json:"object_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	AuditCreate  = "create"
	AuditUpdate  = "update"
	AuditDelete  = "delete"
	AuditRestore = "restore"
	AuditPurge   = "purge"
	AuditCancel  = "cancel"
)
