package docguide

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/docguide/highlight"
)

// Store wraps a SQLite database that persists highlighted code between
// builds. It implements highlight.Cache.
type Store struct {
	db *sql.DB
}

var _ highlight.Cache = (*Store)(nil)

// CacheStats summarises the highlight cache.
type CacheStats struct {
	Entries int
	ByLang  map[string]int
	Oldest  time.Time
	Newest  time.Time
}

// Langs returns the cached language tags in sorted order.
func (s CacheStats) Langs() []string {
	langs := make([]string, 0, len(s.ByLang))
	for l := range s.ByLang {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

const storePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	// Pragmas go in the DSN so every pooled connection gets them. WAL lets a
	// running server read while a build writes; writers wait on the busy
	// timeout instead of failing with SQLITE_BUSY.
	db, err := sql.Open("sqlite", path+storePragmas)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS highlights (
    key TEXT PRIMARY KEY,
    lang TEXT NOT NULL,
    markup TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_highlights_lang ON highlights(lang);
`)
	return err
}

// Get returns the cached markup for key.
func (s *Store) Get(key string) (string, bool, error) {
	var markup string
	err := s.db.QueryRow(`SELECT markup FROM highlights WHERE key = ?`, key).Scan(&markup)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return markup, true, nil
}

// Put stores markup under key, replacing any previous entry.
func (s *Store) Put(key, lang, markup string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO highlights (key, lang, markup, created_at) VALUES (?, ?, ?, ?)`,
		key, lang, markup, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Stats counts cached entries per language.
func (s *Store) Stats() (CacheStats, error) {
	stats := CacheStats{ByLang: make(map[string]int)}
	rows, err := s.db.Query(`SELECT lang, COUNT(*), MIN(created_at), MAX(created_at) FROM highlights GROUP BY lang`)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var lang, oldest, newest string
		var n int
		if err := rows.Scan(&lang, &n, &oldest, &newest); err != nil {
			return stats, err
		}
		stats.ByLang[lang] = n
		stats.Entries += n
		if t, err := time.Parse(time.RFC3339, oldest); err == nil && (stats.Oldest.IsZero() || t.Before(stats.Oldest)) {
			stats.Oldest = t
		}
		if t, err := time.Parse(time.RFC3339, newest); err == nil && t.After(stats.Newest) {
			stats.Newest = t
		}
	}
	return stats, rows.Err()
}

// Purge deletes every cached entry and returns how many were removed.
func (s *Store) Purge() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM highlights`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
