package models

import "time"

type MatchStatus string

const (
	StatusScheduled      MatchStatus = "scheduled"
	StatusInProgress     MatchStatus = "in_progress"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, MatchStatusCompleted, MatchStatusCancelled:
		return true
	}
	return false
}

// Match is a pool match or a bracket match, never both.
// Team references are nullable so that bracket placeholders can exist.
type Match struct {
	ID            int         `json:"id" db:"id"`
	TournamentID  int         `json:"tournament_id" db:"tournament_id"`
	PhaseID       *int        `json:"phase_id,omitempty" db:"phase_id"`
	PoolID        *int        `json:"pool_id,omitempty" db:"pool_id"`
	BracketID     *int        `json:"bracket_id,omitempty" db:"bracket_id"`
	Team1ID       *int        `json:"team1_id" db:"team1_id"`
	Team2ID       *int        `json:"team2_id" db:"team2_id"`
	Score1        *int        `json:"score1" db:"score1"`
	Score2        *int        `json:"score2" db:"score2"`
	ScheduledTime *time.Time  `json:"scheduled_time,omitempty" db:"scheduled_time"`
	FieldID       *int        `json:"field_id,omitempty" db:"field_id"`
	Status        MatchStatus `json:"status" db:"status"`
	MatchNumber   *string     `json:"match_number,omitempty" db:"match_number"`
	BatchID       *string     `json:"batch_id,omitempty" db:"batch_id"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// Involves reports whether the team played on either side.
func (m *Match) Involves(teamID int) bool {
	return (m.Team1ID != nil && *m.Team1ID == teamID) || (m.Team2ID != nil && *m.Team2ID == teamID)
}

// MatchUpdate lists the mutable match attributes. Nil fields are left untouched.
type MatchUpdate struct {
	Team1ID       *int         `json:"team1_id,omitempty"`
	Team2ID       *int         `json:"team2_id,omitempty"`
	Score1        *int         `json:"score1,omitempty"`
	Score2        *int         `json:"score2,omitempty"`
	ScheduledTime *time.Time   `json:"scheduled_time,omitempty"`
	FieldID       *int         `json:"field_id,omitempty"`
	Status        *MatchStatus `json:"status,omitempty"`
}

func (u MatchUpdate) IsEmpty() bool {
	return u.Team1ID == nil && u.Team2ID == nil && u.Score1 == nil && u.Score2 == nil &&
		u.ScheduledTime == nil && u.FieldID == nil && u.Status == nil
}
