package models

import "time"

type Event struct {
	ID                 int       `json:"event_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	DateTime           time.Time `json:"date_time"`
	EndTime            time.Time `json:"end_time"`
	Attendance         *int      `json:"attendance,omitempty"`
	CreatedByOfficerID int       `json:"created_by_officer_id"`
}
