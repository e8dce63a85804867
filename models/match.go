package models

import "time"

type Match struct {
	ID         int       `json:"match_id"`
	DateTime   time.Time `json:"date_time"`
	TeamID     int       `json:"team_id"`
	OpponentID int       `json:"opponent_id"`
	GameID     int       `json:"game_id"`
	WatchLink  *string   `json:"watch_link,omitempty"`
	Result     *string   `json:"result,omitempty"`
}
