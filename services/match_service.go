package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tournify/tournament-manager/calendar"
	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/realtime"
	"github.com/tournify/tournament-manager/repositories"
)

const (
	MessageMatchUpdated      = "MATCH_UPDATED"
	MessageCalendarGenerated = "CALENDAR_GENERATED"
)

type GenerateMatchesInput struct {
	TournamentID         int       `json:"-"`
	PoolID               *int      `json:"pool_id,omitempty"`
	StartTime            time.Time `json:"start_time"`
	MatchDurationMinutes int       `json:"match_duration_minutes"`
	BreakDurationMinutes int       `json:"break_duration_minutes"`
	FieldIDs             []int     `json:"field_ids"`
	// Legs: 1 (default) or 2 for a return leg with sides swapped.
	Legs int `json:"legs,omitempty"`
}

type GenerateMatchesResult struct {
	Count   int    `json:"count"`
	BatchID string `json:"batch_id"`
}

type CreateMatchInput struct {
	TournamentID  int        `json:"-"`
	PhaseID       *int       `json:"phase_id,omitempty"`
	PoolID        *int       `json:"pool_id,omitempty"`
	BracketID     *int       `json:"bracket_id,omitempty"`
	Team1ID       *int       `json:"team1_id,omitempty"`
	Team2ID       *int       `json:"team2_id,omitempty"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	FieldID       *int       `json:"field_id,omitempty"`
	MatchNumber   *string    `json:"match_number,omitempty"`
}

type MatchService interface {
	GenerateMatches(ctx context.Context, input GenerateMatchesInput) (*GenerateMatchesResult, error)
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	UpdateMatch(ctx context.Context, matchID int, upd models.MatchUpdate) (*models.Match, error)
	SubmitScore(ctx context.Context, matchID, score1, score2 int) (*models.Match, error)
	ListTournamentMatches(ctx context.Context, tournamentID int) ([]models.Match, error)
	ListPoolMatches(ctx context.Context, poolID int) ([]models.Match, error)
}

type matchService struct {
	tx        Transactor
	matchRepo repositories.MatchRepository
	teamRepo  repositories.TeamRepository
	poolRepo  repositories.PoolRepository
	publisher Publisher
	logger    *slog.Logger
}

func NewMatchService(
	tx Transactor,
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	poolRepo repositories.PoolRepository,
	publisher Publisher,
	logger *slog.Logger,
) MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &matchService{
		tx:        tx,
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		poolRepo:  poolRepo,
		publisher: publisherOrNoop(publisher),
		logger:    logger,
	}
}

func (s *matchService) GenerateMatches(ctx context.Context, input GenerateMatchesInput) (*GenerateMatchesResult, error) {
	if err := validateID("tournament_id", input.TournamentID); err != nil {
		return nil, err
	}
	if input.PoolID != nil {
		if err := validateID("pool_id", *input.PoolID); err != nil {
			return nil, err
		}
	}
	if input.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", ErrValidationFailed)
	}

	plan := calendar.Plan{
		StartTime:     input.StartTime,
		MatchDuration: time.Duration(input.MatchDurationMinutes) * time.Minute,
		BreakDuration: time.Duration(input.BreakDurationMinutes) * time.Minute,
		FieldIDs:      input.FieldIDs,
		Legs:          input.Legs,
	}
	if err := plan.Validate(); err != nil {
		return nil, planError(err)
	}

	teams, err := s.resolveTeams(ctx, input)
	if err != nil {
		return nil, err
	}

	fixtures, err := calendar.Generate(teamIDs(teams), plan)
	if err != nil {
		return nil, planError(err)
	}

	var phaseID *int
	if input.PoolID != nil {
		phaseID, err = s.poolRepo.GetPhaseID(ctx, nil, *input.PoolID)
		if err != nil {
			return nil, handleRepositoryError(err)
		}
	}

	batchID := uuid.NewString()
	created := make([]models.Match, 0, len(fixtures))
	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		for _, f := range fixtures {
			m := fixtureToMatch(input, f, phaseID, batchID)
			if err := s.matchRepo.Create(ctx, exec, &m); err != nil {
				return fmt.Errorf("failed to insert match %d of %d: %w", f.Order+1, len(fixtures), err)
			}
			created = append(created, m)
		}
		return nil
	})
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	s.logger.Info("match calendar generated",
		slog.Int("tournament_id", input.TournamentID),
		slog.Any("pool_id", input.PoolID),
		slog.Int("teams", len(teams)),
		slog.Int("count", len(created)),
		slog.String("batch_id", batchID),
	)

	s.publisher.BroadcastToRoom(realtime.TournamentRoom(input.TournamentID), message(MessageCalendarGenerated, input.TournamentID, map[string]interface{}{
		"pool_id":  input.PoolID,
		"batch_id": batchID,
		"count":    len(created),
	}))

	return &GenerateMatchesResult{Count: len(created), BatchID: batchID}, nil
}

func (s *matchService) resolveTeams(ctx context.Context, input GenerateMatchesInput) ([]models.Team, error) {
	var (
		teams []models.Team
		err   error
	)
	if input.PoolID != nil {
		teams, err = s.teamRepo.ListByPool(ctx, nil, *input.PoolID)
	} else {
		teams, err = s.teamRepo.ListByTournament(ctx, nil, input.TournamentID)
	}
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return teams, nil
}

func fixtureToMatch(input GenerateMatchesInput, f calendar.Fixture, phaseID *int, batchID string) models.Match {
	team1, team2, field := f.Team1ID, f.Team2ID, f.FieldID
	at := f.ScheduledTime
	return models.Match{
		TournamentID:  input.TournamentID,
		PhaseID:       phaseID,
		PoolID:        input.PoolID,
		Team1ID:       &team1,
		Team2ID:       &team2,
		ScheduledTime: &at,
		FieldID:       &field,
		Status:        models.StatusScheduled,
		BatchID:       &batchID,
	}
}

// planError keeps the scheduling preconditions as their own kinds and
// reports the remaining plan problems as validation failures.
func planError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInsufficientTeams), errors.Is(err, calendar.ErrNoFieldsConfigured):
		return err
	case errors.Is(err, calendar.ErrInvalidDuration), errors.Is(err, calendar.ErrInvalidLegs):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return err
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if err := validateID("tournament_id", input.TournamentID); err != nil {
		return nil, err
	}
	if input.PoolID != nil && input.BracketID != nil {
		return nil, fmt.Errorf("%w: a match belongs to a pool or a bracket, not both", ErrValidationFailed)
	}

	match := &models.Match{
		TournamentID:  input.TournamentID,
		PhaseID:       input.PhaseID,
		PoolID:        input.PoolID,
		BracketID:     input.BracketID,
		Team1ID:       input.Team1ID,
		Team2ID:       input.Team2ID,
		ScheduledTime: input.ScheduledTime,
		FieldID:       input.FieldID,
		Status:        models.StatusScheduled,
		MatchNumber:   input.MatchNumber,
	}
	if match.PoolID != nil && match.PhaseID == nil {
		phaseID, err := s.poolRepo.GetPhaseID(ctx, nil, *match.PoolID)
		if err != nil {
			return nil, handleRepositoryError(err)
		}
		match.PhaseID = phaseID
	}

	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		return nil, handleRepositoryError(err)
	}
	return match, nil
}

// UpdateMatch applies upd as is. It does not tie status to the presence of
// scores; SubmitScore is the path that completes a match.
func (s *matchService) UpdateMatch(ctx context.Context, matchID int, upd models.MatchUpdate) (*models.Match, error) {
	if err := validateID("match_id", matchID); err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidationFailed)
	}
	if upd.Score1 != nil {
		if err := validateScore("score1", *upd.Score1); err != nil {
			return nil, err
		}
	}
	if upd.Score2 != nil {
		if err := validateScore("score2", *upd.Score2); err != nil {
			return nil, err
		}
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidationFailed, *upd.Status)
	}

	match, err := s.updateAndReload(ctx, matchID, upd)
	if err != nil {
		return nil, err
	}
	s.publisher.BroadcastToRoom(realtime.TournamentRoom(match.TournamentID), message(MessageMatchUpdated, match.TournamentID, match))
	return match, nil
}

// SubmitScore records a final score. Resubmitting overwrites the previous result.
func (s *matchService) SubmitScore(ctx context.Context, matchID, score1, score2 int) (*models.Match, error) {
	if err := validateID("match_id", matchID); err != nil {
		return nil, err
	}
	if err := validateScore("score1", score1); err != nil {
		return nil, err
	}
	if err := validateScore("score2", score2); err != nil {
		return nil, err
	}

	completed := models.MatchStatusCompleted
	match, err := s.updateAndReload(ctx, matchID, models.MatchUpdate{
		Score1: &score1,
		Score2: &score2,
		Status: &completed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("score submitted",
		slog.Int("match_id", matchID),
		slog.Int("tournament_id", match.TournamentID),
		slog.Int("score1", score1),
		slog.Int("score2", score2),
	)
	s.publisher.BroadcastToRoom(realtime.TournamentRoom(match.TournamentID), message(MessageMatchUpdated, match.TournamentID, match))
	return match, nil
}

func (s *matchService) updateAndReload(ctx context.Context, matchID int, upd models.MatchUpdate) (*models.Match, error) {
	var match *models.Match
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.Update(ctx, exec, matchID, upd); err != nil {
			return err
		}
		var err error
		match, err = s.matchRepo.GetByID(ctx, exec, matchID)
		return err
	})
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return match, nil
}

func (s *matchService) ListTournamentMatches(ctx context.Context, tournamentID int) ([]models.Match, error) {
	if err := validateID("tournament_id", tournamentID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) ListPoolMatches(ctx context.Context, poolID int) ([]models.Match, error) {
	if err := validateID("pool_id", poolID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByPool(ctx, nil, poolID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}
