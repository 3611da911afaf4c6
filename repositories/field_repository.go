package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tournify/tournament-manager/models"
)

var (
	ErrFieldNotFound          = errors.New("field not found")
	ErrFieldTournamentInvalid = errors.New("field tournament conflict or invalid")
)

type FieldRepository interface {
	Create(ctx context.Context, exec SQLExecutor, field *models.Field) error
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Field, error)
	Delete(ctx context.Context, exec SQLExecutor, id int) error
}

type sqlFieldRepository struct {
	db *sqlx.DB
}

func NewFieldRepository(db *sqlx.DB) FieldRepository {
	return &sqlFieldRepository{db: db}
}

func (r *sqlFieldRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlFieldRepository) Create(ctx context.Context, exec SQLExecutor, field *models.Field) error {
	query := `
		INSERT INTO fields (tournament_id, name, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowxContext(ctx, query, field.TournamentID, field.Name, field.Order).
		Scan(&field.ID, &field.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", ErrFieldTournamentInvalid, err)
		}
		return WrapStorageError(err)
	}
	return nil
}

func (r *sqlFieldRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Field, error) {
	query := `
		SELECT id, tournament_id, name, sort_order, created_at
		FROM fields
		WHERE tournament_id = $1
		ORDER BY sort_order ASC, id ASC`

	fields := make([]models.Field, 0)
	if err := sqlx.SelectContext(ctx, r.getExecutor(exec), &fields, query, tournamentID); err != nil {
		return nil, WrapStorageError(err)
	}
	return fields, nil
}

func (r *sqlFieldRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM fields WHERE id = $1`, id)
	if err != nil {
		return WrapStorageError(err)
	}
	return checkAffectedRows(result, ErrFieldNotFound)
}
