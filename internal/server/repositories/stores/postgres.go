// Package stores implements the read side of the stores table used by the
// dashboard.
package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/dbx"
	"github.com/dmitrijs2005/storeadmin/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM stores`)
}

func (r *PostgresRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM stores WHERE created_at >= $1`, since)
}

func (r *PostgresRepository) CountUpdatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM stores WHERE updated_at >= $1`, since)
}

// Platforms returns the platform column of every store. NULL reads as "".
func (r *PostgresRepository) Platforms(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT platform FROM stores`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var p sql.NullString
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Recent returns up to limit stores, most recently created first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]models.Store, error) {
	query :=
		`SELECT id, name, platform, created_at, owner_id
		 FROM stores
		 ORDER BY created_at DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Store, 0, limit)
	for rows.Next() {
		var s models.Store
		var platform sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &platform, &s.CreatedAt, &s.OwnerID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		s.Platform = platform.String
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
