package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is an operator-facing message about an admin action.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	Level     NotificationLevel `json:"level"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Resource  string            `json:"resource,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
