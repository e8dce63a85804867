package models

import "time"

type Sponsor struct {
	ID             int        `json:"sponsor_id"`
	SponsorName    string     `json:"sponsor_name"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	SponsorWebsite *string    `json:"sponsor_website,omitempty"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
