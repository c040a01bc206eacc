// Package storage persists player profiles and run history.
// The SQLite store uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies;
// SaveData keeps the three profile values in per-user game data files.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/runner"
)

// LocalPlayer is the profile name used for single-player local play.
const LocalPlayer = "local"

// Store manages the SQLite database connection for profiles and runs.
type Store struct {
	db *sql.DB
}

// RunRecord represents a single finished run.
type RunRecord struct {
	ID        int64
	Player    string
	Score     int
	Coins     int           // Coins collected during the run
	Duration  time.Duration // Simulated running time
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			player TEXT PRIMARY KEY,
			best_score INTEGER NOT NULL DEFAULT 0,
			total_coins INTEGER NOT NULL DEFAULT 0,
			skin_id TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadProfile returns the stored profile for player.
// Missing players get zero balances and the default skin.
func (s *Store) LoadProfile(player string) (runner.Profile, error) {
	p := runner.Profile{SkinID: config.DefaultSkin}
	var skin string
	err := s.db.QueryRow(
		"SELECT best_score, total_coins, skin_id FROM profiles WHERE player = ?",
		player,
	).Scan(&p.BestScore, &p.TotalCoins, &skin)

	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return runner.Profile{}, fmt.Errorf("storage: cannot load profile %s: %w", player, err)
	}
	if skin != "" {
		p.SkinID = skin
	}
	return p, nil
}

// SaveBestScore stores the player's best score.
func (s *Store) SaveBestScore(player string, score int) error {
	return s.upsert(player, "best_score", score)
}

// SaveTotalCoins stores the player's coin balance.
func (s *Store) SaveTotalCoins(player string, coins int) error {
	return s.upsert(player, "total_coins", coins)
}

// SaveSkin stores the player's equipped skin.
func (s *Store) SaveSkin(player, skinID string) error {
	return s.upsert(player, "skin_id", skinID)
}

// upsert writes a single profile column, creating the row when needed.
// column is always one of the constants above, never user input.
func (s *Store) upsert(player, column string, value any) error {
	query := fmt.Sprintf(
		`INSERT INTO profiles (player, %[1]s, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET %[1]s = excluded.%[1]s, updated_at = CURRENT_TIMESTAMP`,
		column,
	)
	if _, err := s.db.Exec(query, player, value); err != nil {
		return fmt.Errorf("storage: cannot save %s for %s: %w", column, player, err)
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player, score, coins, duration_ms) VALUES (?, ?, ?, ?)",
		r.Player, r.Score, r.Coins, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs across all players.
// Results are ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, score, coins, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRuns retrieves the most recent runs of one player.
func (s *Store) PlayerRuns(player string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, player, score, coins, duration_ms, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Coins, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest recorded run score.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes the run history. Profiles are kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over the run history.
type RunStats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalCoins int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics, optionally for a single player.
// An empty player aggregates everyone.
func (s *Store) Stats(player string) (*RunStats, error) {
	stats := &RunStats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(coins), 0), MAX(created_at)
		 FROM runs WHERE ? = '' OR player = ?`,
		player, player,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalCoins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles the datetime column as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// PlayerProfile binds a Store to one player so it can serve as a
// session profile store.
type PlayerProfile struct {
	store  *Store
	player string
}

// Profile returns the profile store for player.
func (s *Store) Profile(player string) *PlayerProfile {
	return &PlayerProfile{store: s, player: player}
}

// LoadProfile returns the player's profile.
func (p *PlayerProfile) LoadProfile() (runner.Profile, error) {
	return p.store.LoadProfile(p.player)
}

// SaveBestScore stores the player's best score.
func (p *PlayerProfile) SaveBestScore(score int) error {
	return p.store.SaveBestScore(p.player, score)
}

// SaveTotalCoins stores the player's coin balance.
func (p *PlayerProfile) SaveTotalCoins(coins int) error {
	return p.store.SaveTotalCoins(p.player, coins)
}

// SaveSkin stores the player's equipped skin.
func (p *PlayerProfile) SaveSkin(skinID string) error {
	return p.store.SaveSkin(p.player, skinID)
}

// SaveRun records a finished run for the player.
func (p *PlayerProfile) SaveRun(score, coins int, d time.Duration) error {
	_, err := p.store.SaveRun(RunRecord{Player: p.player, Score: score, Coins: coins, Duration: d})
	return err
}
