package models

// EventAttendee records that a user attended an event.
// The (event_id, user_id) pair is the primary key.
type EventAttendee struct {
	EventID int `json:"event_id"`
	UserID  int `json:"user_id"`
}
