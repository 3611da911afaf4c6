package models

import "time"

// Field is a playing surface. Order drives the default field sequence.
type Field struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	Order        int       `json:"order" db:"sort_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
