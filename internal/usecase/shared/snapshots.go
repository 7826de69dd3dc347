package shared

import (
	"time"

	"github.com/google/uuid"
)

type RoomSnapshot struct {
	ID     uuid.UUID
	Number int
}

type SubscriberSnapshot struct {
	ID    uuid.UUID
	Email string
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int
	RunAt     time.Time
	LastError *string
	CreatedAt time.Time
}
