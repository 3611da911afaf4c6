package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tournify/tournament-manager/models"
)

var (
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchReferenceInvalid = errors.New("match references an unknown tournament, phase, pool, bracket, team or field")
	ErrMatchConstraint       = errors.New("match violates a table constraint")
)

const matchColumns = `id, tournament_id, phase_id, pool_id, bracket_id, team1_id, team2_id, score1, score2,
	scheduled_time, field_id, status, match_number, batch_id, created_at, updated_at`

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	ListByPool(ctx context.Context, exec SQLExecutor, poolID int) ([]models.Match, error)
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Match, error)
	Update(ctx context.Context, exec SQLExecutor, id int, upd models.MatchUpdate) error
}

type sqlMatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) MatchRepository {
	return &sqlMatchRepository{db: db}
}

func (r *sqlMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		INSERT INTO matches
			(tournament_id, phase_id, pool_id, bracket_id, team1_id, team2_id, score1, score2,
			 scheduled_time, field_id, status, match_number, batch_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`

	err := r.getExecutor(exec).QueryRowxContext(ctx, query,
		match.TournamentID,
		match.PhaseID,
		match.PoolID,
		match.BracketID,
		match.Team1ID,
		match.Team2ID,
		match.Score1,
		match.Score2,
		match.ScheduledTime,
		match.FieldID,
		match.Status,
		match.MatchNumber,
		match.BatchID,
	).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)

	return r.handleMatchError(err)
}

func (r *sqlMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	var match models.Match
	if err := sqlx.GetContext(ctx, r.getExecutor(exec), &match, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, WrapStorageError(err)
	}
	return &match, nil
}

func (r *sqlMatchRepository) ListByPool(ctx context.Context, exec SQLExecutor, poolID int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE pool_id = $1 ORDER BY id ASC`

	matches := make([]models.Match, 0)
	if err := sqlx.SelectContext(ctx, r.getExecutor(exec), &matches, query, poolID); err != nil {
		return nil, WrapStorageError(err)
	}
	return matches, nil
}

func (r *sqlMatchRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1
		ORDER BY scheduled_time ASC, field_id ASC, id ASC`

	matches := make([]models.Match, 0)
	if err := sqlx.SelectContext(ctx, r.getExecutor(exec), &matches, query, tournamentID); err != nil {
		return nil, WrapStorageError(err)
	}
	return matches, nil
}

// Update writes only the non-nil fields of upd and bumps updated_at.
func (r *sqlMatchRepository) Update(ctx context.Context, exec SQLExecutor, id int, upd models.MatchUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Team1ID != nil {
		add("team1_id", *upd.Team1ID)
	}
	if upd.Team2ID != nil {
		add("team2_id", *upd.Team2ID)
	}
	if upd.Score1 != nil {
		add("score1", *upd.Score1)
	}
	if upd.Score2 != nil {
		add("score2", *upd.Score2)
	}
	if upd.ScheduledTime != nil {
		add("scheduled_time", *upd.ScheduledTime)
	}
	if upd.FieldID != nil {
		add("field_id", *upd.FieldID)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE matches SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := r.getExecutor(exec).ExecContext(ctx, query, args...)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *sqlMatchRepository) handleMatchError(err error) error {
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrMatchReferenceInvalid, err)
	case isCheckViolation(err):
		return fmt.Errorf("%w: %w", ErrMatchConstraint, err)
	}
	return WrapStorageError(err)
}
