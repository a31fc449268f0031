// Package store persists session records in a SQLite database. One row per
// session; the row carries the full record as JSON plus the few columns the
// listing queries need. The active session, if any, is the single row with no
// end time.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hearthkeep/lootledger"
)

// ErrNotFound reports a lookup of a session id that was never saved.
var ErrNotFound = errors.New("session not found")

// Store is a SQLite-backed session record store. It is synchronous and meant
// for a short-lived CLI process; a long-running host should serialize access.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id         INTEGER PRIMARY KEY,
		zone       TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at   TEXT,
		record     BLOB NOT NULL
	);`)
	return err
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Save inserts or replaces a session record.
func (s *Store) Save(rec lootledger.SessionRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("save session %d: %w", rec.ID, err)
	}
	var endedAt any
	if !rec.EndedAt.IsZero() {
		endedAt = rec.EndedAt.Format(time.RFC3339Nano)
	}
	_, err = s.db.Exec(`INSERT INTO sessions (id, zone, started_at, ended_at, record)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			zone = excluded.zone,
			started_at = excluded.started_at,
			ended_at = excluded.ended_at,
			record = excluded.record;`,
		rec.ID, rec.Zone, rec.StartedAt.Format(time.RFC3339Nano), endedAt, raw)
	if err != nil {
		return fmt.Errorf("save session %d: %w", rec.ID, err)
	}
	return nil
}

// Session loads one session record by id.
func (s *Store) Session(id int64) (lootledger.SessionRecord, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT record FROM sessions WHERE id = ?;`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return lootledger.SessionRecord{}, fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return lootledger.SessionRecord{}, fmt.Errorf("load session %d: %w", id, err)
	}
	return decodeRecord(raw)
}

// Active returns the record of the unfinished session, if one exists.
func (s *Store) Active() (lootledger.SessionRecord, bool, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT record FROM sessions WHERE ended_at IS NULL ORDER BY id DESC LIMIT 1;`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return lootledger.SessionRecord{}, false, nil
	}
	if err != nil {
		return lootledger.SessionRecord{}, false, fmt.Errorf("load active session: %w", err)
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		return lootledger.SessionRecord{}, false, err
	}
	return rec, true, nil
}

// Sessions lists finished session records, most recent first, up to limit
// (0 means all).
func (s *Store) Sessions(limit int) ([]lootledger.SessionRecord, error) {
	q := `SELECT record FROM sessions WHERE ended_at IS NOT NULL ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q+`;`, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var recs []lootledger.SessionRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return recs, nil
}

// NextID returns one past the highest saved session id, 1 for an empty store.
func (s *Store) NextID() (int64, error) {
	var max sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(id) FROM sessions;`).Scan(&max); err != nil {
		return 0, fmt.Errorf("next session id: %w", err)
	}
	return max.Int64 + 1, nil
}

func decodeRecord(raw []byte) (lootledger.SessionRecord, error) {
	var rec lootledger.SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return lootledger.SessionRecord{}, fmt.Errorf("decode session record: %w", err)
	}
	return rec, nil
}
