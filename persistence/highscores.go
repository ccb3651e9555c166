package persistence

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MaxHighscores is the number of endless runs kept.
const MaxHighscores = 5

// Highscores keeps the best endless-mode runs in SQLite.
type Highscores struct {
	db *sql.DB
}

// HighscoreEntry is one endless run.
type HighscoreEntry struct {
	ID        int64
	Score     int
	Seconds   float64
	CreatedAt time.Time
}

// OpenHighscores creates or opens the highscore database at path. A leading
// ~ expands to the home directory.
func OpenHighscores(dbPath string) (*Highscores, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("persistence: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("persistence: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("persistence: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: cannot connect to database: %w", err)
	}

	h := &Highscores{db: db}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: migration failed: %w", err)
	}
	return h, nil
}

func (h *Highscores) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS endless_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			seconds REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_endless_scores_top ON endless_scores(score DESC);
	`
	_, err := h.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (h *Highscores) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Rank returns the 1-based position a score would take in the table, or 0
// when it would not make the top entries. Earlier runs win ties.
func (h *Highscores) Rank(score int) (int, error) {
	var better int
	err := h.db.QueryRow(
		"SELECT COUNT(*) FROM (SELECT score FROM endless_scores ORDER BY score DESC, id ASC LIMIT ?) WHERE score >= ?",
		MaxHighscores, score,
	).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("persistence: cannot rank score: %w", err)
	}
	if better >= MaxHighscores {
		return 0, nil
	}
	return better + 1, nil
}

// Submit records an endless run. It reports whether the run is the new best
// and its rank, 0 when it did not make the table. Entries beyond the top
// MaxHighscores are dropped.
func (h *Highscores) Submit(score int, seconds float64) (bool, int, error) {
	if score <= 0 {
		return false, 0, nil
	}
	rank, err := h.Rank(score)
	if err != nil {
		return false, 0, err
	}
	if rank == 0 {
		return false, 0, nil
	}

	if _, err := h.db.Exec(
		"INSERT INTO endless_scores (score, seconds) VALUES (?, ?)",
		score, seconds,
	); err != nil {
		return false, 0, fmt.Errorf("persistence: cannot save score: %w", err)
	}
	if _, err := h.db.Exec(
		`DELETE FROM endless_scores WHERE id NOT IN (
			SELECT id FROM endless_scores ORDER BY score DESC, id ASC LIMIT ?
		)`,
		MaxHighscores,
	); err != nil {
		return false, 0, fmt.Errorf("persistence: cannot trim scores: %w", err)
	}
	return rank == 1, rank, nil
}

// Top returns the kept runs, best first.
func (h *Highscores) Top() ([]HighscoreEntry, error) {
	rows, err := h.db.Query(
		`SELECT id, score, seconds, created_at
		 FROM endless_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		MaxHighscores,
	)
	if err != nil {
		return nil, fmt.Errorf("persistence: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []HighscoreEntry
	for rows.Next() {
		var e HighscoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("persistence: cannot scan row: %w", err)
		}
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("persistence: row iteration error: %w", err)
	}
	return entries, nil
}

// Clear deletes every run.
func (h *Highscores) Clear() error {
	if _, err := h.db.Exec("DELETE FROM endless_scores"); err != nil {
		return fmt.Errorf("persistence: cannot clear scores: %w", err)
	}
	return nil
}

// FormatTime renders seconds as mm:ss.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
