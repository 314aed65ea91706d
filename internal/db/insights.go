package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/melissa/career-advisor/internal/types"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// SaveInsight stores a market-insight snapshot and returns its identifier.
// Snapshots let callers track how a market shifts between synthesis runs.
func (db *DB) SaveInsight(ctx context.Context, insight *types.MarketInsight) (uuid.UUID, error) {
	payload, err := json.Marshal(insight)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal insight: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO market_insights (domain, location, sample_size, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		insight.Domain, insight.Location, insight.SampleSize, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save insight: %w", err)
	}
	return id, nil
}

// LatestInsight returns the most recent snapshot for a domain/location, or
// nil when none has been stored yet.
func (db *DB) LatestInsight(ctx context.Context, domain, location string) (*types.MarketInsight, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM market_insights
		 WHERE domain = $1 AND location = $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		domain, location,
	).Scan(&payload)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load insight: %w", err)
	}

	var insight types.MarketInsight
	if err := json.Unmarshal(payload, &insight); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insight: %w", err)
	}
	return &insight, nil
}
