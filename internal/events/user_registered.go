package events

import "time"

const (
	NotificationsTopic = "jobportal.notifications.v1"

	UserRegisteredType = "user.registered"
)

type UserRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
