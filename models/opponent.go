package models

type Opponent struct {
	ID           int     `json:"opponent_id"`
	OpponentName string  `json:"opponent_name"`
	GameID       int     `json:"game_id"`
	School       *string `json:"school,omitempty"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
