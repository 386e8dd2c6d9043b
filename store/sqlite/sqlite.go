/*
Package sqlite provides the SQLite-backed schedule store.

PURPOSE:
  Persists the three schedule collections (trainings, leaves, platforms)
  on the host side. The bot and the HTTP API assemble mini-app payloads
  from this store; the engine itself never touches it - payloads remain
  the only interchange with the core.

KEY TABLES:
  trainings: Scheduled unit activities, one row per activity
  leaves:    Personnel absence records, one row per person-day
  platforms: Organizational sub-units with informational headcounts

DATE STORAGE:
  Dates are stored as canonical YYYY-MM-DD TEXT, the same representation
  the engine buckets on. No date parsing happens between the store and
  the calendar grid.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/schedule.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  p, err := store.LoadPayload(ctx)

SEE ALSO:
  - calendar/types.go: Record shapes persisted here
  - api/handlers.go: HTTP surface over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mec/calendar-engine/calendar"
)

// Store persists schedule data using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS platforms (
		id INTEGER PRIMARY KEY,
		name TEXT,
		personnel_count INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS trainings (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT,
		end_time TEXT,
		location TEXT,
		required_platforms_json TEXT,
		description TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_trainings_date ON trainings(date);

	CREATE TABLE IF NOT EXISTS leaves (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL DEFAULT 0,
		user_name TEXT NOT NULL,
		platform_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT,
		approved_by_ic INTEGER NOT NULL DEFAULT 0,
		approved_by_pc INTEGER NOT NULL DEFAULT 0,
		details TEXT
	);

	-- Hot path: day bucketing and platform filtering
	CREATE INDEX IF NOT EXISTS idx_leaves_date ON leaves(date);
	CREATE INDEX IF NOT EXISTS idx_leaves_platform ON leaves(platform_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TRAININGS
// =============================================================================

// SaveTraining inserts or replaces a training.
func (s *Store) SaveTraining(ctx context.Context, t calendar.Training) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	platformsJSON, err := json.Marshal(t.RequiredPlatforms)
	if err != nil {
		return fmt.Errorf("failed to encode required platforms: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trainings
			(id, title, type, date, start_time, end_time, location, required_platforms_json, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, string(t.Type), t.Date, t.StartTime, t.EndTime, t.Location, string(platformsJSON), t.Description)
	if err != nil {
		return fmt.Errorf("failed to save training: %w", err)
	}
	return nil
}

// ListTrainings returns all trainings ordered by date.
func (s *Store) ListTrainings(ctx context.Context) ([]calendar.Training, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, type, date, start_time, end_time, location, required_platforms_json, description
		FROM trainings ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	defer rows.Close()

	trainings := []calendar.Training{}
	for rows.Next() {
		var t calendar.Training
		var typ, platformsJSON string
		if err := rows.Scan(&t.ID, &t.Title, &typ, &t.Date, &t.StartTime, &t.EndTime,
			&t.Location, &platformsJSON, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan training: %w", err)
		}
		t.Type = calendar.TrainingType(typ)
		if platformsJSON != "" && platformsJSON != "null" {
			if err := json.Unmarshal([]byte(platformsJSON), &t.RequiredPlatforms); err != nil {
				return nil, fmt.Errorf("failed to decode required platforms: %w", err)
			}
		}
		trainings = append(trainings, t)
	}
	return trainings, rows.Err()
}

// =============================================================================
// LEAVES
// =============================================================================

// SaveLeave inserts or replaces a leave.
func (s *Store) SaveLeave(ctx context.Context, l calendar.Leave) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO leaves
			(id, user_id, user_name, platform_id, type, date, time, approved_by_ic, approved_by_pc, details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.UserID, l.UserName, l.PlatformID, string(l.Type), l.Date, l.Time,
		l.ApprovedByIC, l.ApprovedByPC, l.Details)
	if err != nil {
		return fmt.Errorf("failed to save leave: %w", err)
	}
	return nil
}

// ListLeaves returns all leaves ordered by date.
func (s *Store) ListLeaves(ctx context.Context) ([]calendar.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, user_name, platform_id, type, date, time, approved_by_ic, approved_by_pc, details
		FROM leaves ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := []calendar.Leave{}
	for rows.Next() {
		var l calendar.Leave
		var typ string
		if err := rows.Scan(&l.ID, &l.UserID, &l.UserName, &l.PlatformID, &typ, &l.Date,
			&l.Time, &l.ApprovedByIC, &l.ApprovedByPC, &l.Details); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		l.Type = calendar.LeaveType(typ)
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// =============================================================================
// PLATFORMS
// =============================================================================

// SavePlatform inserts or replaces a platform.
func (s *Store) SavePlatform(ctx context.Context, p calendar.Platform) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO platforms (id, name, personnel_count) VALUES (?, ?, ?)`,
		p.ID, p.Name, p.PersonnelCount)
	if err != nil {
		return fmt.Errorf("failed to save platform: %w", err)
	}
	return nil
}

// ListPlatforms returns all platforms ordered by id.
func (s *Store) ListPlatforms(ctx context.Context) ([]calendar.Platform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, personnel_count FROM platforms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	platforms := []calendar.Platform{}
	for rows.Next() {
		var p calendar.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.PersonnelCount); err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}

// =============================================================================
// PAYLOAD ASSEMBLY
// =============================================================================

// LoadPayload assembles the full schedule payload from the store. The
// identity field is left empty; it belongs to the requesting session, not
// to the stored schedule.
func (s *Store) LoadPayload(ctx context.Context) (calendar.Payload, error) {
	trainings, err := s.ListTrainings(ctx)
	if err != nil {
		return calendar.Payload{}, err
	}
	leaves, err := s.ListLeaves(ctx)
	if err != nil {
		return calendar.Payload{}, err
	}
	platforms, err := s.ListPlatforms(ctx)
	if err != nil {
		return calendar.Payload{}, err
	}

	return calendar.Payload{Trainings: trainings, Leaves: leaves, Platforms: platforms}, nil
}

// SavePayload persists every record of a payload. Used by the ingest
// endpoint and the scenario loaders.
func (s *Store) SavePayload(ctx context.Context, p calendar.Payload) error {
	for _, t := range p.Trainings {
		if err := s.SaveTraining(ctx, t); err != nil {
			return err
		}
	}
	for _, l := range p.Leaves {
		if err := s.SaveLeave(ctx, l); err != nil {
			return err
		}
	}
	for _, pl := range p.Platforms {
		if err := s.SavePlatform(ctx, pl); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears all schedule data. Only use in development/demo environments.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"trainings", "leaves", "platforms"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}
	return nil
}
