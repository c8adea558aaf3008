package progress

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded headless run.
type Run struct {
	ID        int64
	Level     int
	Ticks     uint64
	Elapsed   time.Duration
	Completed bool
	Script    string
	CreatedAt time.Time
}

// SQLStore records runs in SQLite and derives progress from them.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens or creates the database at path, creating parent
// directories and expanding a leading ~.
func OpenSQL(path string) (*SQLStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("progress: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("progress: cannot create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: cannot connect to database: %w", err)
	}

	s := &SQLStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: migration failed: %w", err)
	}
	return s, nil
}

func (s *SQLStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			completed INTEGER NOT NULL,
			script TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level, completed, elapsed_ms);

		CREATE TABLE IF NOT EXISTS unlocked (
			level INTEGER PRIMARY KEY
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun inserts r and returns its ID.
func (s *SQLStore) RecordRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (level, ticks, elapsed_ms, completed, script) VALUES (?, ?, ?, ?, ?)",
		r.Level, int64(r.Ticks), r.Elapsed.Milliseconds(), r.Completed, r.Script,
	)
	if err != nil {
		return 0, fmt.Errorf("progress: cannot record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("progress: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRuns returns the fastest completed run per level, ordered by level.
func (s *SQLStore) BestRuns() ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.level, r.ticks, r.elapsed_ms, r.script, r.created_at
		FROM runs r
		WHERE r.completed = 1 AND r.elapsed_ms > 0 AND r.id = (
			SELECT id FROM runs
			WHERE level = r.level AND completed = 1 AND elapsed_ms > 0
			ORDER BY elapsed_ms ASC, id ASC
			LIMIT 1
		)
		ORDER BY r.level`)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r         Run
			ticks     int64
			ms        int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Level, &ticks, &ms, &r.Script, &createdAt); err != nil {
			return nil, fmt.Errorf("progress: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Elapsed = time.Duration(ms) * time.Millisecond
		r.Completed = true
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress: row iteration error: %w", err)
	}
	return out, nil
}

// Load derives progress from the unlocked table and the best runs.
func (s *SQLStore) Load() (*Progress, error) {
	p := New()
	rows, err := s.db.Query("SELECT level FROM unlocked")
	if err != nil {
		return nil, fmt.Errorf("progress: cannot query unlocked: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, fmt.Errorf("progress: cannot scan row: %w", err)
		}
		if valid(level) {
			p.Unlocked[level-1] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress: row iteration error: %w", err)
	}

	best, err := s.BestRuns()
	if err != nil {
		return nil, err
	}
	for _, r := range best {
		if valid(r.Level) {
			p.BestMillis[r.Level-1] = r.Elapsed.Milliseconds()
		}
	}
	return p, nil
}

// Save stores the unlocked set. Best times come from recorded runs.
func (s *SQLStore) Save(p *Progress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("progress: begin: %w", err)
	}
	defer tx.Rollback()

	for i, ok := range p.Unlocked {
		if !ok {
			continue
		}
		if _, err := tx.Exec("INSERT OR IGNORE INTO unlocked (level) VALUES (?)", i+1); err != nil {
			return fmt.Errorf("progress: save unlocked: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("progress: commit: %w", err)
	}
	return nil
}
