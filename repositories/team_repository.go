package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tournify/tournament-manager/models"
)

var ErrTeamTournamentInvalid = errors.New("team tournament conflict or invalid")

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Team, error)
	// ListByPool returns the pool roster in assignment order.
	ListByPool(ctx context.Context, exec SQLExecutor, poolID int) ([]models.Team, error)
}

type sqlTeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) TeamRepository {
	return &sqlTeamRepository{db: db}
}

func (r *sqlTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	query := `
		INSERT INTO teams (tournament_id, name, logo_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowxContext(ctx, query, team.TournamentID, team.Name, team.LogoURL).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", ErrTeamTournamentInvalid, err)
		}
		return WrapStorageError(err)
	}
	return nil
}

func (r *sqlTeamRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Team, error) {
	query := `
		SELECT id, tournament_id, name, logo_url, created_at
		FROM teams
		WHERE tournament_id = $1
		ORDER BY id ASC`

	teams := make([]models.Team, 0)
	if err := sqlx.SelectContext(ctx, r.getExecutor(exec), &teams, query, tournamentID); err != nil {
		return nil, WrapStorageError(err)
	}
	return teams, nil
}

func (r *sqlTeamRepository) ListByPool(ctx context.Context, exec SQLExecutor, poolID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.tournament_id, t.name, t.logo_url, t.created_at
		FROM pool_teams pt
		JOIN teams t ON t.id = pt.team_id
		WHERE pt.pool_id = $1
		ORDER BY pt.id ASC`

	teams := make([]models.Team, 0)
	if err := sqlx.SelectContext(ctx, r.getExecutor(exec), &teams, query, poolID); err != nil {
		return nil, WrapStorageError(err)
	}
	return teams, nil
}
