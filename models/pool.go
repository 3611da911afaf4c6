package models

import "time"

// Pool groups teams of a phase for round-robin play.
type Pool struct {
	ID        int       `json:"id" db:"id"`
	PhaseID   int       `json:"phase_id" db:"phase_id"`
	Name      string    `json:"name" db:"name"`
	Emoji     *string   `json:"emoji,omitempty" db:"emoji"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
