package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/tournify/tournament-manager/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	// GetScoringRulesByPool resolves pool -> phase -> tournament.
	GetScoringRulesByPool(ctx context.Context, exec SQLExecutor, poolID int) (*models.ScoringRules, error)
}

type sqlTournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) TournamentRepository {
	return &sqlTournamentRepository{db: db}
}

func (r *sqlTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlTournamentRepository) GetScoringRulesByPool(ctx context.Context, exec SQLExecutor, poolID int) (*models.ScoringRules, error) {
	query := `
		SELECT t.points_win, t.points_draw, t.points_loss
		FROM pools p
		JOIN tournament_phases ph ON ph.id = p.phase_id
		JOIN tournaments t ON t.id = ph.tournament_id
		WHERE p.id = $1`

	var rules models.ScoringRules
	if err := sqlx.GetContext(ctx, r.getExecutor(exec), &rules, query, poolID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, WrapStorageError(err)
	}
	return &rules, nil
}
