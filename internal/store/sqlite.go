package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the symbol set in a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database, runs the
// migration and seeds the default symbols if the table is empty.
func NewSQLiteStore(dbPath string, seed []string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.seedDefaults(seed); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS portfolio (
		symbol TEXT PRIMARY KEY
	)`)
	return err
}

// seedDefaults inserts the default symbols exactly once. Guarded by an
// emptiness check rather than INSERT OR IGNORE so a cleared table does
// not get reseeded row by row on later restarts.
func (s *SQLiteStore) seedDefaults(seed []string) error {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM portfolio").Scan(&count); err != nil {
		return err
	}
	if count > 0 || len(seed) == 0 {
		return nil
	}

	log.Printf("[INFO] seeding %d default symbols", len(seed))
	for _, sym := range seed {
		if _, err := s.db.Exec("INSERT INTO portfolio (symbol) VALUES (?)", sym); err != nil {
			return fmt.Errorf("insert %s: %w", sym, err)
		}
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT symbol FROM portfolio")
	if err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var sym string
		if err := rows.Scan(&sym); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, sym)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	return symbols, nil
}

func (s *SQLiteStore) Add(ctx context.Context, symbol string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO portfolio (symbol) VALUES (?)", symbol)
	if err != nil {
		return false, fmt.Errorf("add symbol %s: %w", symbol, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add symbol %s: %w", symbol, err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) Remove(ctx context.Context, symbol string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM portfolio WHERE symbol = ?", symbol)
	if err != nil {
		return false, fmt.Errorf("remove symbol %s: %w", symbol, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove symbol %s: %w", symbol, err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
