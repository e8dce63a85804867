package models

type Game struct {
	ID       int    `json:"game_id"`
	GameName string `json:"game_name"`

	BgImageKey *string `json:"-" db:"bg_image_key"`
	BgImageURL *string `json:"bg_image_url,omitempty" db:"-"`
}
