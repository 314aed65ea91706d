package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSeenStore keeps the discovery seen-set in a Redis set per profile.
// It is a drop-in alternative to the PostgreSQL store for deployments that
// already run Redis for notification fan-out.
type RedisSeenStore struct {
	client *redis.Client
}

// NewRedisSeenStore parses redisURL, verifies connectivity, and returns the store
func NewRedisSeenStore(ctx context.Context, redisURL string) (*RedisSeenStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisSeenStore{client: client}, nil
}

// Close releases the underlying client
func (s *RedisSeenStore) Close() error {
	return s.client.Close()
}

func seenKey(profileID string) string {
	return "seen:" + profileID
}

// LoadSeen returns the seen-set for a profile
func (s *RedisSeenStore) LoadSeen(ctx context.Context, profileID string) (map[string]struct{}, error) {
	members, err := s.client.SMembers(ctx, seenKey(profileID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load seen set: %w", err)
	}

	seen := make(map[string]struct{}, len(members))
	for _, member := range members {
		seen[member] = struct{}{}
	}
	return seen, nil
}

// MarkSeen adds newly surfaced posting identifiers to the seen-set
func (s *RedisSeenStore) MarkSeen(ctx context.Context, profileID string, postingIDs []string) error {
	if len(postingIDs) == 0 {
		return nil
	}

	members := make([]interface{}, len(postingIDs))
	for i, id := range postingIDs {
		members[i] = id
	}

	if err := s.client.SAdd(ctx, seenKey(profileID), members...).Err(); err != nil {
		return fmt.Errorf("failed to mark postings seen: %w", err)
	}
	return nil
}
