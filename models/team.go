package models

import "time"

type Team struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	LogoURL      *string   `json:"logo_url,omitempty" db:"logo_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
