package services

import (
	"errors"
	"fmt"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/realtime"
	"github.com/tournify/tournament-manager/repositories"
)

const (
	MinScore = 0
	MaxScore = 99
)

func validateScore(name string, score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrValidationFailed, name, MinScore, MaxScore, score)
	}
	return nil
}

func validateID(name string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrValidationFailed, name, id)
	}
	return nil
}

// handleRepositoryError translates repository sentinels into service errors.
// Unknown errors pass through unchanged so that ErrStorageUnavailable survives.
func handleRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrPoolNotFound):
		return ErrPoolNotFound
	case errors.Is(err, repositories.ErrFieldNotFound):
		return ErrFieldNotFound
	case errors.Is(err, repositories.ErrTeamAlreadyInPool):
		return fmt.Errorf("%w: %w", ErrTeamAlreadyInPool, err)
	case errors.Is(err, repositories.ErrMatchReferenceInvalid),
		errors.Is(err, repositories.ErrMatchConstraint),
		errors.Is(err, repositories.ErrPoolAssignmentTarget),
		errors.Is(err, repositories.ErrPoolPhaseInvalid),
		errors.Is(err, repositories.ErrFieldTournamentInvalid),
		errors.Is(err, repositories.ErrTeamTournamentInvalid):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return err
}

func teamIDs(teams []models.Team) []int {
	ids := make([]int, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}

// Publisher delivers live updates to connected clients.
type Publisher interface {
	BroadcastToRoom(roomID string, message interface{})
}

type noopPublisher struct{}

func (noopPublisher) BroadcastToRoom(string, interface{}) {}

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

func message(msgType string, tournamentID int, payload interface{}) realtime.Message {
	return realtime.Message{Type: msgType, Payload: payload, RoomID: realtime.TournamentRoom(tournamentID)}
}
