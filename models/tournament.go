package models

// ScoringRules are the league points awarded per result.
type ScoringRules struct {
	Win  int `json:"points_win" db:"points_win"`
	Draw int `json:"points_draw" db:"points_draw"`
	Loss int `json:"points_loss" db:"points_loss"`
}

var DefaultScoringRules = ScoringRules{Win: 3, Draw: 1, Loss: 0}
