package g2p

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// PredictionCache persists G2P predictions in a SQLite database so a word
// is only ever predicted once per corpus, even across runs. It caches
// phoneme lookups only, never analysis results.
type PredictionCache struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewPredictionCache opens (or creates) the cache database at path.
func NewPredictionCache(path string) (*PredictionCache, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS predictions (
			word       TEXT PRIMARY KEY,
			phonemes   TEXT NOT NULL,
			provider   TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PredictionCache{db: db}, nil
}

// Get returns the cached prediction for a word.
func (c *PredictionCache) Get(word string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var phonemes string
	err := c.db.QueryRow(
		"SELECT phonemes FROM predictions WHERE word = ?",
		normalizeWord(word),
	).Scan(&phonemes)
	if err != nil {
		return nil, false
	}
	if phonemes == "" {
		return nil, true
	}
	return strings.Fields(phonemes), true
}

// Put stores a prediction. Write errors are reported but not fatal; the
// cache is an optimization, not a source of truth.
func (c *PredictionCache) Put(word string, phonemes []string, provider string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO predictions (word, phonemes, provider) VALUES (?, ?, ?)",
		normalizeWord(word), strings.Join(phonemes, " "), provider,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "G2P cache write error: %v\n", err)
	}
}

// Count returns the number of cached predictions.
func (c *PredictionCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int
	c.db.QueryRow("SELECT COUNT(*) FROM predictions").Scan(&total)
	return total
}

// Close closes the underlying database.
func (c *PredictionCache) Close() error {
	return c.db.Close()
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// CachedProvider wraps a Provider with a PredictionCache.
type CachedProvider struct {
	inner Provider
	cache *PredictionCache
}

// NewCachedProvider creates a caching wrapper around a provider.
func NewCachedProvider(inner Provider, cache *PredictionCache) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache}
}

// Predict serves from the cache when possible, otherwise delegates to the
// wrapped provider and stores the result.
func (p *CachedProvider) Predict(ctx context.Context, word string) ([]string, error) {
	if phonemes, ok := p.cache.Get(word); ok {
		return phonemes, nil
	}

	phonemes, err := p.inner.Predict(ctx, word)
	if err != nil {
		return nil, err
	}
	p.cache.Put(word, phonemes, p.inner.Name())
	return phonemes, nil
}

// Name returns the wrapped provider's name.
func (p *CachedProvider) Name() string {
	return fmt.Sprintf("%s (cached)", p.inner.Name())
}

// IsAvailable checks the wrapped provider.
func (p *CachedProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}

// Close closes the underlying cache.
func (p *CachedProvider) Close() error {
	return p.cache.Close()
}
