package snapshot

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix is prepended to every snapshot list key
const DefaultRedisPrefix = "unispec:snapshots:"

// RedisStore keeps snapshots of each catalog in a Redis list, newest at
// the head.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store over an existing client
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(catalog string) string {
	return r.prefix + catalog
}

// Save pushes a snapshot onto the catalog's list
func (r *RedisStore) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := r.client.LPush(ctx, r.key(snap.Catalog), payload).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Latest returns the head of the catalog's list, or ErrNotFound
func (r *RedisStore) Latest(ctx context.Context, catalog string) (*Snapshot, error) {
	payload, err := r.client.LIndex(ctx, r.key(catalog), 0).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return decode(payload)
}

// History returns up to limit snapshots, newest first. A limit of zero or
// less returns every snapshot.
func (r *RedisStore) History(ctx context.Context, catalog string, limit int) ([]*Snapshot, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	payloads, err := r.client.LRange(ctx, r.key(catalog), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}

	out := make([]*Snapshot, 0, len(payloads))
	for _, p := range payloads {
		snap, err := decode([]byte(p))
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// Close closes the client
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func decode(payload []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}
