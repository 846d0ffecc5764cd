// Package journal provides a SQLite-backed log of finished rover runs.
package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"rover/internal/rover"
)

var ErrPathRequired = errors.New("journal path is required")

//go:embed schema.sql
var schema string

// Entry is one recorded run. Commands is the encoded direction sequence.
type Entry struct {
	ID        int64
	Commands  string
	Start     rover.Rover
	Final     rover.Rover
	Blocked   int
	CreatedAt time.Time
}

// Store persists run entries in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the journal at path, creating the schema when needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts e and returns its id. A zero CreatedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(e.Start.Name)
	if name == "" {
		return 0, fmt.Errorf("rover name is required")
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO runs (
		   rover, commands,
		   start_x, start_y, start_facing,
		   end_x, end_y, end_facing,
		   blocked, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name,
		e.Commands,
		e.Start.Position.X, e.Start.Position.Y, e.Start.Orientation.String(),
		e.Final.Position.X, e.Final.Position.Y, e.Final.Orientation.String(),
		e.Blocked,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	return res.LastInsertId()
}

// List returns runs newest first. An empty name lists every rover.
func (s *Store) List(ctx context.Context, name string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, rover, commands,
		        start_x, start_y, start_facing,
		        end_x, end_y, end_facing,
		        blocked, created_at
		   FROM runs
		  WHERE ? = '' OR rover = ?
		  ORDER BY created_at DESC, id DESC`,
		name, name,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                      Entry
			roverName              string
			startFacing, endFacing string
			createdAt              int64
		)
		if err := rows.Scan(
			&e.ID, &roverName, &e.Commands,
			&e.Start.Position.X, &e.Start.Position.Y, &startFacing,
			&e.Final.Position.X, &e.Final.Position.Y, &endFacing,
			&e.Blocked, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.Start.Name, e.Final.Name = roverName, roverName
		if e.Start.Orientation, err = rover.ParseCardinal(startFacing); err != nil {
			return nil, fmt.Errorf("run %d: %w", e.ID, err)
		}
		if e.Final.Orientation, err = rover.ParseCardinal(endFacing); err != nil {
			return nil, fmt.Errorf("run %d: %w", e.ID, err)
		}
		e.CreatedAt = fromMillis(createdAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}
