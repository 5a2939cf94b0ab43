package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/middlewares"
)

// ext returns the per-request transaction when one is present in the context,
// otherwise the shared connection pool. Repositories route every statement
// through it so mutating routes commit atomically.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
