package services

import (
	"context"

	"github.com/tournify/tournament-manager/repositories"
)

// Transactor runs fn in a single transaction; see db.Transactor.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error
}
