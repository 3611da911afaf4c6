package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/repositories"
)

type CreateTeamInput struct {
	TournamentID int     `json:"-"`
	Name         string  `json:"name"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	ListTournamentTeams(ctx context.Context, tournamentID int) ([]models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if err := validateID("tournament_id", input.TournamentID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrValidationFailed)
	}

	team := &models.Team{
		TournamentID: input.TournamentID,
		Name:         name,
		LogoURL:      input.LogoURL,
	}
	if err := s.teamRepo.Create(ctx, nil, team); err != nil {
		return nil, handleRepositoryError(err)
	}
	return team, nil
}

func (s *teamService) ListTournamentTeams(ctx context.Context, tournamentID int) ([]models.Team, error) {
	if err := validateID("tournament_id", tournamentID); err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}
