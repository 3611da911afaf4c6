package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/repositories"
	"github.com/tournify/tournament-manager/standings"
)

type StandingsService interface {
	GetStandings(ctx context.Context, poolID int) ([]models.Standing, error)
}

type standingsService struct {
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
}

func NewStandingsService(
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
) StandingsService {
	return &standingsService{
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
	}
}

// GetStandings recomputes the pool ranking from the stored matches on every call.
func (s *standingsService) GetStandings(ctx context.Context, poolID int) ([]models.Standing, error) {
	if err := validateID("pool_id", poolID); err != nil {
		return nil, err
	}

	var (
		roster  []models.Team
		matches []models.Match
		rules   = models.DefaultScoringRules
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.teamRepo.ListByPool(gctx, nil, poolID)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByPool(gctx, nil, poolID)
		return err
	})
	g.Go(func() error {
		r, err := s.tournamentRepo.GetScoringRulesByPool(gctx, nil, poolID)
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		rules = *r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, handleRepositoryError(err)
	}

	return standings.Compute(roster, matches, rules), nil
}
