package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is durable per-key storage of JSON-encoded values. It absorbs
// its own failures: a missing key, a decode error, or a storage error
// all surface as "value absent" — callers supply defaults instead of
// handling errors. Every Set is durable before it returns.
type Store interface {
	// Get decodes the stored value into dest and reports whether it did.
	// On absence or decode failure dest is left untouched.
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
	Delete(ctx context.Context, key string)
}

type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Get(ctx context.Context, key string, dest any) bool {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("discarding undecodable stored value", "key", key, "error", err)
		return false
	}
	return true
}

func (s *PGStore) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("marshal stored value", "key", key, "error", err)
		return
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw)
	if err != nil {
		slog.Error("persist stored value", "key", key, "error", err)
	}
}

func (s *PGStore) Delete(ctx context.Context, key string) {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		slog.Error("delete stored value", "key", key, "error", err)
	}
}
