package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"scheduling-intelligence/internal/client/repository"
	"scheduling-intelligence/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed client Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("client/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("client/repository/postgre.%s", method)
}

// GetVIPFlag reads clients.is_vip.
func (r *implRepository) GetVIPFlag(ctx context.Context, clientID string) (bool, bool, error) {
	const query = `SELECT is_vip FROM clients WHERE id = $1`

	var vip bool
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(&vip)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetVIPFlag"), err)
		return false, false, repository.ErrFailedToGet
	}
	return vip, true, nil
}
