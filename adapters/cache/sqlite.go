package cache

import (
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"ratefinder/core/types"
	"ratefinder/internal/logging"
)

// schema for the cache table. Applied on open.
const schema = `
CREATE TABLE IF NOT EXISTS search_cache (
	key TEXT PRIMARY KEY,
	result TEXT NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_search_cache_exp ON search_cache(expires_at);
`

// SQLite is a persistent search-result cache backed by a SQLite file.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenSQLite opens (creating if needed) a SQLite cache at the given path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, log: logging.Logger}, nil
}

// Get returns the cached result for a key if present and unexpired.
// Storage errors are treated as misses; the cache is an acceleration
// layer, never a source of truth.
func (s *SQLite) Get(key string) (*types.SearchResult, bool) {
	var raw string
	var expiresAt int64
	err := s.db.QueryRow(
		`SELECT result, expires_at FROM search_cache WHERE key = ?`, key,
	).Scan(&raw, &expiresAt)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn("cache read failed", zap.Error(err))
		}
		return nil, false
	}

	if time.Now().Unix() > expiresAt {
		_, _ = s.db.Exec(`DELETE FROM search_cache WHERE key = ?`, key)
		return nil, false
	}

	var result types.SearchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.log.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		_, _ = s.db.Exec(`DELETE FROM search_cache WHERE key = ?`, key)
		return nil, false
	}
	return &result, true
}

// Set stores a result under a key with the given TTL.
func (s *SQLite) Set(key string, result *types.SearchResult, ttl time.Duration) {
	raw, err := json.Marshal(result)
	if err != nil {
		s.log.Warn("cache encode failed", zap.Error(err))
		return
	}

	_, err = s.db.Exec(
		`INSERT INTO search_cache (key, result, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET result = excluded.result, expires_at = excluded.expires_at`,
		key, string(raw), time.Now().Add(ttl).Unix())
	if err != nil {
		s.log.Warn("cache write failed", zap.Error(err))
	}
}

// Purge removes expired entries.
func (s *SQLite) Purge() error {
	_, err := s.db.Exec(`DELETE FROM search_cache WHERE expires_at < ?`, time.Now().Unix())
	return err
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
