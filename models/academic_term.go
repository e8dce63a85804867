package models

import "time"

type AcademicTerm struct {
	ID        int       `json:"term_id"`
	Semester  string    `json:"semester"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
