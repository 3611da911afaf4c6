// Package standings derives pool rankings from completed matches.
package standings

import (
	"cmp"
	"slices"

	"github.com/tournify/tournament-manager/models"
)

// Compute builds one standing per roster team from the completed matches
// and returns them ranked. An empty roster yields an empty, non-nil slice.
func Compute(roster []models.Team, matches []models.Match, rules models.ScoringRules) []models.Standing {
	table := make([]models.Standing, 0, len(roster))
	for _, team := range roster {
		s := models.Standing{Team: team}
		for i := range matches {
			m := &matches[i]
			if m.Status != models.MatchStatusCompleted || !m.Involves(team.ID) {
				continue
			}
			accumulate(&s, m, rules)
		}
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
		table = append(table, s)
	}
	Rank(table)
	return table
}

// accumulate adds a single match to the team's standing. A completed match
// missing a score contributes nothing.
func accumulate(s *models.Standing, m *models.Match, rules models.ScoringRules) {
	if m.Score1 == nil || m.Score2 == nil {
		return
	}

	teamScore, opponentScore := *m.Score1, *m.Score2
	if m.Team1ID == nil || *m.Team1ID != s.Team.ID {
		teamScore, opponentScore = opponentScore, teamScore
	}

	s.Played++
	s.GoalsFor += teamScore
	s.GoalsAgainst += opponentScore

	switch {
	case teamScore > opponentScore:
		s.Won++
		s.Points += rules.Win
	case teamScore == opponentScore:
		s.Drawn++
		s.Points += rules.Draw
	default:
		s.Lost++
		s.Points += rules.Loss
	}
}

// Compare orders standings by points, goal difference and goals for,
// all descending. Teams equal on all three compare as equal.
func Compare(a, b models.Standing) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	return cmp.Compare(b.GoalsFor, a.GoalsFor)
}

// Rank sorts in place, keeping roster order between equal teams, and
// numbers the positions from 1.
func Rank(table []models.Standing) {
	slices.SortStableFunc(table, Compare)
	for i := range table {
		table[i].Rank = i + 1
	}
}
