package model

import "time"

// Notification records one reminder fired by the scheduler: the day it
// queued and the message shown to the user.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Day is the quiz day the trigger queued.
	Day QuizzDate `json:"day"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// CreatedAt is when this notification was generated.
	CreatedAt time.Time `json:"created_at"`
}
