package models

import "time"

type Coordinator struct {
	ID        int        `json:"coordinator_id"`
	UserID    int        `json:"user_id"`
	GameID    int        `json:"game_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}
