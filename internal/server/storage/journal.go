package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen/sakura"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/voxel"
)

const timeFormat = time.RFC3339Nano

// ErrAttemptNotFound is returned when a journal entry does not exist.
var ErrAttemptNotFound = errors.New("attempt not found")

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	seed       INTEGER NOT NULL,
	x          INTEGER NOT NULL,
	y          INTEGER NOT NULL,
	z          INTEGER NOT NULL,
	accepted   INTEGER NOT NULL,
	written    INTEGER NOT NULL,
	params     TEXT    NOT NULL,
	created_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS attempts_seed ON attempts (seed);
`

// Attempt is one journaled tree placement.
type Attempt struct {
	ID       int64
	Seed     int64
	Origin   voxel.Pos
	Accepted bool
	// Written is the number of voxels the tree wrote; zero when rejected.
	Written   int
	Params    sakura.Params
	CreatedAt time.Time
}

// Journal records every placement attempt so that any tree can be rebuilt
// from its seed later.
type Journal struct {
	sqlDB *sql.DB
}

// OpenJournal opens or creates the SQLite journal at path.
func OpenJournal(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
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
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Journal{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (j *Journal) Close() error {
	if j == nil || j.sqlDB == nil {
		return nil
	}
	return j.sqlDB.Close()
}

// Record stores a and returns its ID. A zero CreatedAt is set to now.
func (j *Journal) Record(ctx context.Context, a Attempt) (int64, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	params, err := json.Marshal(a.Params)
	if err != nil {
		return 0, fmt.Errorf("marshal params: %w", err)
	}

	res, err := j.sqlDB.ExecContext(ctx,
		`INSERT INTO attempts (seed, x, y, z, accepted, written, params, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Seed, a.Origin.X, a.Origin.Y, a.Origin.Z, a.Accepted, a.Written,
		string(params), a.CreatedAt.Format(timeFormat))
	if err != nil {
		return 0, fmt.Errorf("insert attempt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert attempt: %w", err)
	}
	return id, nil
}

const selectAttempt = `SELECT id, seed, x, y, z, accepted, written, params, created_at FROM attempts`

// Attempt returns the entry with the given ID.
func (j *Journal) Attempt(ctx context.Context, id int64) (Attempt, error) {
	row := j.sqlDB.QueryRowContext(ctx, selectAttempt+` WHERE id = ?`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, fmt.Errorf("attempt %d: %w", id, ErrAttemptNotFound)
	}
	return a, err
}

// Attempts returns up to limit entries, newest first. onlyAccepted filters
// out rejected sites.
func (j *Journal) Attempts(ctx context.Context, limit int, onlyAccepted bool) ([]Attempt, error) {
	query := selectAttempt
	if onlyAccepted {
		query += ` WHERE accepted = 1`
	}
	query += ` ORDER BY id DESC LIMIT ?`

	rows, err := j.sqlDB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return out, nil
}

// Stats returns the number of journaled attempts and how many were accepted.
func (j *Journal) Stats(ctx context.Context) (total, accepted int, err error) {
	row := j.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(accepted), 0) FROM attempts`)
	if err := row.Scan(&total, &accepted); err != nil {
		return 0, 0, fmt.Errorf("journal stats: %w", err)
	}
	return total, accepted, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAttempt(s scanner) (Attempt, error) {
	var (
		a         Attempt
		params    string
		createdAt string
	)
	err := s.Scan(&a.ID, &a.Seed, &a.Origin.X, &a.Origin.Y, &a.Origin.Z,
		&a.Accepted, &a.Written, &params, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, err
		}
		return Attempt{}, fmt.Errorf("scan attempt: %w", err)
	}
	if err := json.Unmarshal([]byte(params), &a.Params); err != nil {
		return Attempt{}, fmt.Errorf("parse params of attempt %d: %w", a.ID, err)
	}
	if a.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return Attempt{}, fmt.Errorf("parse time of attempt %d: %w", a.ID, err)
	}
	return a, nil
}
