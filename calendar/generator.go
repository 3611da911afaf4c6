package calendar

import (
	"errors"
	"time"
)

var (
	ErrInsufficientTeams  = errors.New("at least two teams are required to generate matches")
	ErrNoFieldsConfigured = errors.New("at least one field is required to generate matches")
	ErrInvalidDuration    = errors.New("match and break durations must not be negative")
	ErrInvalidLegs        = errors.New("legs must be 1 or 2")
)

// Plan describes the timeline the pairings are placed on.
type Plan struct {
	StartTime     time.Time
	MatchDuration time.Duration
	BreakDuration time.Duration
	FieldIDs      []int
	// Legs is 1 for a single round-robin and 2 for home and away. Zero means 1.
	Legs int
}

// Stride is the width of one time slot.
func (p Plan) Stride() time.Duration {
	return p.MatchDuration + p.BreakDuration
}

func (p Plan) legs() int {
	if p.Legs == 0 {
		return 1
	}
	return p.Legs
}

func (p Plan) Validate() error {
	if len(p.FieldIDs) == 0 {
		return ErrNoFieldsConfigured
	}
	if p.MatchDuration < 0 || p.BreakDuration < 0 {
		return ErrInvalidDuration
	}
	if l := p.legs(); l != 1 && l != 2 {
		return ErrInvalidLegs
	}
	return nil
}

// SlotFor returns the field and start time of the k-th pairing (0-indexed).
// All fields of a slot are filled before the next slot starts.
func (p Plan) SlotFor(k int) (fieldID int, at time.Time) {
	f := len(p.FieldIDs)
	slot := k / f
	return p.FieldIDs[k%f], p.StartTime.Add(time.Duration(slot) * p.Stride())
}

// Fixture is a pairing placed on the timeline.
type Fixture struct {
	Order         int
	Team1ID       int
	Team2ID       int
	FieldID       int
	ScheduledTime time.Time
	Leg           int
}

// Generate pairs every team with every other team and lays the pairs out
// across the plan's fields.
func Generate(teamIDs []int, plan Plan) ([]Fixture, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if len(teamIDs) < 2 {
		return nil, ErrInsufficientTeams
	}

	pairings := RoundRobinPairings(teamIDs)
	legs := plan.legs()

	fixtures := make([]Fixture, 0, len(pairings)*legs)
	k := 0
	for leg := 1; leg <= legs; leg++ {
		for _, pr := range pairings {
			t1, t2 := pr.Team1ID, pr.Team2ID
			if leg == 2 {
				t1, t2 = t2, t1
			}
			fieldID, at := plan.SlotFor(k)
			fixtures = append(fixtures, Fixture{
				Order:         k,
				Team1ID:       t1,
				Team2ID:       t2,
				FieldID:       fieldID,
				ScheduledTime: at,
				Leg:           leg,
			})
			k++
		}
	}
	return fixtures, nil
}
