package models

import "time"

type User struct {
	ID           int       `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	SignupDate   time.Time `json:"signup_date"`
}
