package models

import "time"

// TeamMembership links a membership to a team for a period of time.
// The (team_id, membership_id) pair is the primary key.
type TeamMembership struct {
	TeamID       int        `json:"team_id"`
	MembershipID int        `json:"membership_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}
