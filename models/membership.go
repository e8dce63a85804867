package models

import "time"

type Membership struct {
	ID          int       `json:"membership_id"`
	UserID      int       `json:"user_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	ShirtSizeID *int      `json:"shirt_size_id,omitempty"`
}
