package services

import (
	"errors"

	"github.com/tournify/tournament-manager/calendar"
	"github.com/tournify/tournament-manager/repositories"
)

// Common errors used by the services and by the HTTP error mapping.
var (
	// Malformed input at the boundary. Not retryable.
	ErrValidationFailed = errors.New("validation failed")

	// Scheduling preconditions.
	ErrInsufficientTeams  = calendar.ErrInsufficientTeams
	ErrNoFieldsConfigured = calendar.ErrNoFieldsConfigured

	// The store could not be reached. Propagated as-is, never retried here.
	ErrStorageUnavailable = repositories.ErrStorageUnavailable

	ErrMatchNotFound     = errors.New("match not found")
	ErrPoolNotFound      = errors.New("pool not found")
	ErrFieldNotFound     = errors.New("field not found")
	ErrTeamAlreadyInPool = errors.New("team is already assigned to a pool")
)
