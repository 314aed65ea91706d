package db

import (
	"context"
	"fmt"
)

// LoadSeen returns every posting identifier already surfaced to the profile
func (db *DB) LoadSeen(ctx context.Context, profileID string) (map[string]struct{}, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT posting_id FROM seen_postings WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query seen postings: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var postingID string
		if err := rows.Scan(&postingID); err != nil {
			return nil, fmt.Errorf("failed to scan seen posting: %w", err)
		}
		seen[postingID] = struct{}{}
	}
	return seen, rows.Err()
}

// MarkSeen records the given posting identifiers as surfaced to the profile.
// Re-marking an already seen posting is a no-op.
func (db *DB) MarkSeen(ctx context.Context, profileID string, postingIDs []string) error {
	if len(postingIDs) == 0 {
		return nil
	}

	for _, postingID := range postingIDs {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO seen_postings (profile_id, posting_id)
			 VALUES ($1, $2)
			 ON CONFLICT (profile_id, posting_id) DO NOTHING`,
			profileID, postingID,
		)
		if err != nil {
			return fmt.Errorf("failed to mark posting %s seen: %w", postingID, err)
		}
	}
	return nil
}
