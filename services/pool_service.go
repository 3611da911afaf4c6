package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/repositories"
)

type CreatePoolInput struct {
	PhaseID int     `json:"-"`
	Name    string  `json:"name"`
	Emoji   *string `json:"emoji,omitempty"`
}

type PoolService interface {
	CreatePool(ctx context.Context, input CreatePoolInput) (*models.Pool, error)
	// AssignTeams adds all teams to the pool or none of them.
	AssignTeams(ctx context.Context, poolID int, teamIDs []int) ([]models.Team, error)
	ListPoolTeams(ctx context.Context, poolID int) ([]models.Team, error)
}

type poolService struct {
	tx       Transactor
	poolRepo repositories.PoolRepository
	teamRepo repositories.TeamRepository
	logger   *slog.Logger
}

func NewPoolService(
	tx Transactor,
	poolRepo repositories.PoolRepository,
	teamRepo repositories.TeamRepository,
	logger *slog.Logger,
) PoolService {
	if logger == nil {
		logger = slog.Default()
	}
	return &poolService{
		tx:       tx,
		poolRepo: poolRepo,
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (s *poolService) CreatePool(ctx context.Context, input CreatePoolInput) (*models.Pool, error) {
	if err := validateID("phase_id", input.PhaseID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: pool name is required", ErrValidationFailed)
	}

	pool := &models.Pool{PhaseID: input.PhaseID, Name: name, Emoji: input.Emoji}
	if err := s.poolRepo.Create(ctx, nil, pool); err != nil {
		return nil, handleRepositoryError(err)
	}
	return pool, nil
}

func (s *poolService) AssignTeams(ctx context.Context, poolID int, teamIDs []int) ([]models.Team, error) {
	if err := validateID("pool_id", poolID); err != nil {
		return nil, err
	}
	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: team_ids must not be empty", ErrValidationFailed)
	}
	seen := make(map[int]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if err := validateID("team_id", id); err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: team %d listed twice", ErrValidationFailed, id)
		}
		seen[id] = struct{}{}
	}

	var roster []models.Team
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if _, err := s.poolRepo.GetByID(ctx, exec, poolID); err != nil {
			return err
		}
		for _, id := range teamIDs {
			if err := s.poolRepo.AssignTeam(ctx, exec, poolID, id); err != nil {
				return err
			}
		}
		var err error
		roster, err = s.teamRepo.ListByPool(ctx, exec, poolID)
		return err
	})
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	s.logger.Info("teams assigned to pool", slog.Int("pool_id", poolID), slog.Int("added", len(teamIDs)), slog.Int("roster", len(roster)))
	return roster, nil
}

func (s *poolService) ListPoolTeams(ctx context.Context, poolID int) ([]models.Team, error) {
	if err := validateID("pool_id", poolID); err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.ListByPool(ctx, nil, poolID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}
