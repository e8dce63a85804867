package models

import "time"

type Officer struct {
	ID        int        `json:"officer_id"`
	UserID    int        `json:"user_id"`
	RoleID    int        `json:"role_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	ImageKey *string `json:"-" db:"image_key"`
	ImageURL *string `json:"image_url,omitempty" db:"-"`
}
