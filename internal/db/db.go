// Package db implements the persistence collaborators the engine core leaves
// to its callers: the discovery seen-set and historical market-insight
// snapshots. The engine itself is stateless; only the CLI and server wrappers
// wire these stores in.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeenStore records which posting identifiers have already been surfaced to a
// user, so repeated discovery runs stay idempotent across processes.
type SeenStore interface {
	// LoadSeen returns the seen-set for a profile
	LoadSeen(ctx context.Context, profileID string) (map[string]struct{}, error)
	// MarkSeen adds newly surfaced posting identifiers to the seen-set
	MarkSeen(ctx context.Context, profileID string, postingIDs []string) error
}

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}
