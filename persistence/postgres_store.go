package persistence

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/vi-snake/constant"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore handles persistence using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects and initializes the schema
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the tables and the singleton rows
func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snake_high_score (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS snake_stats (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		stats JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS snake_leaderboard (
		id BIGSERIAL PRIMARY KEY,
		score INTEGER NOT NULL,
		difficulty TEXT NOT NULL,
		level INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	INSERT INTO snake_high_score (id, score) VALUES (1, 0) ON CONFLICT (id) DO NOTHING;
	`

	if _, err := ps.db.Exec(schema); err != nil {
		return err
	}

	defaults, err := json.Marshal(DefaultStats())
	if err != nil {
		return err
	}
	_, err = ps.db.Exec(`INSERT INTO snake_stats (id, stats) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`, string(defaults))
	return err
}

// LoadHighScore returns the stored high score
func (ps *PostgresStore) LoadHighScore() (int, error) {
	var score int
	err := ps.db.QueryRow(`SELECT score FROM snake_high_score WHERE id = 1`).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}
	return score, nil
}

// SaveHighScore replaces the stored high score
func (ps *PostgresStore) SaveHighScore(score int) error {
	query := `
	INSERT INTO snake_high_score (id, score) VALUES (1, $1)
	ON CONFLICT (id)
	DO UPDATE SET score = $1, updated_at = NOW()
	`
	if _, err := ps.db.Exec(query, score); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// LoadStats returns the stored stats
func (ps *PostgresStore) LoadStats() (Stats, error) {
	var raw []byte
	err := ps.db.QueryRow(`SELECT stats FROM snake_stats WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return DefaultStats(), nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load stats: %w", err)
	}

	stats := DefaultStats()
	if err := json.Unmarshal(raw, &stats); err != nil {
		return Stats{}, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return stats, nil
}

// SaveStats replaces the stored stats
func (ps *PostgresStore) SaveStats(stats Stats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	query := `
	INSERT INTO snake_stats (id, stats) VALUES (1, $1)
	ON CONFLICT (id)
	DO UPDATE SET stats = $1, updated_at = NOW()
	`
	if _, err := ps.db.Exec(query, string(raw)); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// AddLeaderboardEntry inserts the session and trims rows beyond the top list
// Ties are ordered by id, matching insertion order
func (ps *PostgresStore) AddLeaderboardEntry(score int, difficulty string, level int) ([]LeaderboardEntry, error) {
	tx, err := ps.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO snake_leaderboard (score, difficulty, level) VALUES ($1, $2, $3)`,
		score, difficulty, level,
	); err != nil {
		return nil, fmt.Errorf("failed to insert leaderboard entry: %w", err)
	}

	trim := `
	DELETE FROM snake_leaderboard WHERE id NOT IN (
		SELECT id FROM snake_leaderboard ORDER BY score DESC, id ASC LIMIT $1
	)
	`
	if _, err := tx.Exec(trim, constant.LeaderboardSize); err != nil {
		return nil, fmt.Errorf("failed to trim leaderboard: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit leaderboard entry: %w", err)
	}

	return ps.Leaderboard()
}

// Leaderboard returns the retained entries, best first
func (ps *PostgresStore) Leaderboard() ([]LeaderboardEntry, error) {
	rows, err := ps.db.Query(
		`SELECT score, difficulty, level, created_at FROM snake_leaderboard ORDER BY score DESC, id ASC LIMIT $1`,
		constant.LeaderboardSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]LeaderboardEntry, 0, constant.LeaderboardSize)
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Score, &e.Difficulty, &e.Level, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearLeaderboard removes all entries
func (ps *PostgresStore) ClearLeaderboard() error {
	if _, err := ps.db.Exec(`DELETE FROM snake_leaderboard`); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}
	return nil
}

// ClearStats resets stats to defaults
func (ps *PostgresStore) ClearStats() error {
	return ps.SaveStats(DefaultStats())
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
