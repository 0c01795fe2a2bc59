// Package storage provides SQLite-based persistence for the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded run.
type RunEntry struct {
	ID               int64
	Player           string // Local user or SSH user name
	Outcome          invaders.RunOutcome
	Ticks            uint64
	ShotsFired       int
	EnemiesDestroyed int
	EnemiesTotal     int
	CreatedAt        time.Time
}

// Accuracy returns the share of shots that destroyed an enemy, in [0, 1].
func (e RunEntry) Accuracy() float64 {
	if e.ShotsFired == 0 {
		return 0
	}
	return float64(e.EnemiesDestroyed) / float64(e.ShotsFired)
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			shots_fired INTEGER NOT NULL DEFAULT 0,
			enemies_destroyed INTEGER NOT NULL DEFAULT 0,
			enemies_total INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(outcome);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (player, outcome, ticks, shots_fired, enemies_destroyed, enemies_total)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Player, string(e.Outcome), int64(e.Ticks), e.ShotsFired, e.EnemiesDestroyed, e.EnemiesTotal, //#nosec G115 -- tick counts fit in int64
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

const runColumns = `id, player, outcome, ticks, shots_fired, enemies_destroyed, enemies_total, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunsByOutcome retrieves the most recent runs with the given outcome.
func (s *Store) RunsByOutcome(outcome invaders.RunOutcome, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE outcome = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		string(outcome), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// FastestWins retrieves won runs ordered by fewest ticks.
func (s *Store) FastestWins(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE outcome = ?
		 ORDER BY ticks ASC, id ASC
		 LIMIT ?`,
		string(invaders.OutcomeWon), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var outcome string
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &outcome, &ticks,
			&e.ShotsFired, &e.EnemiesDestroyed, &e.EnemiesTotal, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = invaders.RunOutcome(outcome)
		e.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Summary contains aggregated statistics over every recorded run.
type Summary struct {
	Runs             int
	Wins             int
	Abandoned        int
	ShotsFired       int64
	EnemiesDestroyed int64
	FastestWinTicks  uint64 // Zero if there are no wins
	LastPlayed       time.Time
}

// Accuracy returns the share of all shots that destroyed an enemy.
func (s Summary) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.EnemiesDestroyed) / float64(s.ShotsFired)
}

// GetSummary aggregates the run history.
func (s *Store) GetSummary() (*Summary, error) {
	sum := &Summary{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(shots_fired), 0),
		        COALESCE(SUM(enemies_destroyed), 0)
		 FROM runs`,
		string(invaders.OutcomeWon), string(invaders.OutcomeAbandoned),
	).Scan(&sum.Runs, &sum.Wins, &sum.Abandoned, &sum.ShotsFired, &sum.EnemiesDestroyed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	var fastest sql.NullInt64
	err = s.db.QueryRow(
		`SELECT MIN(ticks) FROM runs WHERE outcome = ?`,
		string(invaders.OutcomeWon),
	).Scan(&fastest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get fastest win: %w", err)
	}
	if fastest.Valid {
		sum.FastestWinTicks = uint64(fastest.Int64) //#nosec G115 -- stored from a uint64
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTime(lastPlayed)
	}

	return sum, nil
}

// Recorder saves a player's runs. It implements invaders.RunRecorder so the
// game can report runs without depending on the storage package.
type Recorder struct {
	store  *Store
	player string
}

// Recorder returns a RunRecorder that tags every run with player.
func (s *Store) Recorder(player string) *Recorder {
	return &Recorder{store: s, player: player}
}

// RecordRun implements invaders.RunRecorder.
func (r *Recorder) RecordRun(res invaders.RunResult) error {
	_, err := r.store.SaveRun(RunEntry{
		Player:           r.player,
		Outcome:          res.Outcome,
		Ticks:            res.Ticks,
		ShotsFired:       res.ShotsFired,
		EnemiesDestroyed: res.EnemiesDestroyed,
		EnemiesTotal:     res.EnemiesTotal,
	})
	return err
}

// Ensure Recorder implements RunRecorder
var _ invaders.RunRecorder = (*Recorder)(nil)
