package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tournify/tournament-manager/models"
)

var (
	ErrPoolNotFound         = errors.New("pool not found")
	ErrPoolPhaseInvalid     = errors.New("pool phase conflict or invalid")
	ErrTeamAlreadyInPool    = errors.New("team is already assigned to a pool")
	ErrPoolAssignmentTarget = errors.New("pool or team does not exist")
)

type PoolRepository interface {
	Create(ctx context.Context, exec SQLExecutor, pool *models.Pool) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Pool, error)
	// GetPhaseID returns nil when the pool does not exist.
	GetPhaseID(ctx context.Context, exec SQLExecutor, poolID int) (*int, error)
	AssignTeam(ctx context.Context, exec SQLExecutor, poolID, teamID int) error
}

type sqlPoolRepository struct {
	db *sqlx.DB
}

func NewPoolRepository(db *sqlx.DB) PoolRepository {
	return &sqlPoolRepository{db: db}
}

func (r *sqlPoolRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlPoolRepository) Create(ctx context.Context, exec SQLExecutor, pool *models.Pool) error {
	query := `
		INSERT INTO pools (phase_id, name, emoji)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowxContext(ctx, query, pool.PhaseID, pool.Name, pool.Emoji).
		Scan(&pool.ID, &pool.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", ErrPoolPhaseInvalid, err)
		}
		return WrapStorageError(err)
	}
	return nil
}

func (r *sqlPoolRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Pool, error) {
	query := `SELECT id, phase_id, name, emoji, created_at FROM pools WHERE id = $1`

	var pool models.Pool
	if err := sqlx.GetContext(ctx, r.getExecutor(exec), &pool, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPoolNotFound
		}
		return nil, WrapStorageError(err)
	}
	return &pool, nil
}

func (r *sqlPoolRepository) GetPhaseID(ctx context.Context, exec SQLExecutor, poolID int) (*int, error) {
	var phaseID int
	err := r.getExecutor(exec).QueryRowxContext(ctx, `SELECT phase_id FROM pools WHERE id = $1`, poolID).Scan(&phaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, WrapStorageError(err)
	}
	return &phaseID, nil
}

func (r *sqlPoolRepository) AssignTeam(ctx context.Context, exec SQLExecutor, poolID, teamID int) error {
	query := `INSERT INTO pool_teams (pool_id, team_id) VALUES ($1, $2)`

	_, err := r.getExecutor(exec).ExecContext(ctx, query, poolID, teamID)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: team %d", ErrTeamAlreadyInPool, teamID)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: pool %d, team %d", ErrPoolAssignmentTarget, poolID, teamID)
	}
	return WrapStorageError(err)
}
