package models

type Team struct {
	ID            int     `json:"team_id"`
	TeamName      string  `json:"team_name"`
	GameID        int     `json:"game_id"`
	CoordinatorID int     `json:"coordinator_id"`
	Achievements  *string `json:"achievements,omitempty"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
}
