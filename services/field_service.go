package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/repositories"
)

type CreateFieldInput struct {
	TournamentID int    `json:"-"`
	Name         string `json:"name"`
	Order        int    `json:"order"`
}

type FieldService interface {
	CreateField(ctx context.Context, input CreateFieldInput) (*models.Field, error)
	ListFields(ctx context.Context, tournamentID int) ([]models.Field, error)
	DeleteField(ctx context.Context, fieldID int) error
}

type fieldService struct {
	fieldRepo repositories.FieldRepository
}

func NewFieldService(fieldRepo repositories.FieldRepository) FieldService {
	return &fieldService{fieldRepo: fieldRepo}
}

func (s *fieldService) CreateField(ctx context.Context, input CreateFieldInput) (*models.Field, error) {
	if err := validateID("tournament_id", input.TournamentID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: field name is required", ErrValidationFailed)
	}
	if input.Order < 0 {
		return nil, fmt.Errorf("%w: order must not be negative", ErrValidationFailed)
	}

	field := &models.Field{TournamentID: input.TournamentID, Name: name, Order: input.Order}
	if err := s.fieldRepo.Create(ctx, nil, field); err != nil {
		return nil, handleRepositoryError(err)
	}
	return field, nil
}

// ListFields returns the tournament's fields in scheduling order.
func (s *fieldService) ListFields(ctx context.Context, tournamentID int) ([]models.Field, error) {
	if err := validateID("tournament_id", tournamentID); err != nil {
		return nil, err
	}
	fields, err := s.fieldRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if fields == nil {
		return []models.Field{}, nil
	}
	return fields, nil
}

// DeleteField removes the field. Matches scheduled on it keep their slot
// but lose the field reference.
func (s *fieldService) DeleteField(ctx context.Context, fieldID int) error {
	if err := validateID("field_id", fieldID); err != nil {
		return err
	}
	return handleRepositoryError(s.fieldRepo.Delete(ctx, nil, fieldID))
}
