package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docket-cli/internal/model"
	"docket-cli/internal/msg"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Journal is an append-only log of dispatched messages.
//
// It records what happened for debugging and auditing. It does not store
// entries and nothing reads it back into application state.
type Journal struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Record is one journal row.
type Record struct {
	Seq            int64           `json:"seq"`
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	Payload        json.RawMessage `json:"payload"`
	EntryCount     int             `json:"entryCount"`
	OverlayVisible bool            `json:"overlayVisible"`
	RecordedAt     time.Time       `json:"recordedAt"`
}

// Msg decodes the recorded message.
func (r Record) Msg() (msg.Msg, error) {
	return msg.Decode(r.Kind, r.Payload)
}

var ErrNoJournal = errors.New("no journal configured")

// OpenJournal opens (creating if needed) the journal at path.
func OpenJournal(ctx context.Context, path string) (*Journal, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrNoJournal
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets `docket journal` read while a TUI session is writing.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateJournal(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Journal{db: db, path: path, now: time.Now}, nil
}

func migrateJournal(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS journal (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			payload_json TEXT NOT NULL,
			entry_count INTEGER NOT NULL,
			overlay_visible INTEGER NOT NULL,
			recorded_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_kind ON journal(kind);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) Path() string { return j.path }

// Record appends m together with a summary of the state it produced.
func (j *Journal) Record(ctx context.Context, m msg.Msg, after model.State) error {
	kind, payload, err := msg.Encode(m)
	if err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	_, err = j.db.ExecContext(ctx,
		`INSERT INTO journal(id, kind, payload_json, entry_count, overlay_visible, recorded_at_unixms) VALUES(?, ?, ?, ?, ?, ?)`,
		id.String(), kind, string(payload), len(after.Entries), boolToInt(after.OverlayVisible), j.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}
	return nil
}

// Recent returns up to limit records, newest first. limit <= 0 means all.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Record, error) {
	q := `SELECT seq, id, kind, payload_json, entry_count, overlay_visible, recorded_at_unixms FROM journal ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var (
			r       Record
			payload string
			overlay int
			atMs    int64
		)
		if err := rows.Scan(&r.Seq, &r.ID, &r.Kind, &payload, &r.EntryCount, &overlay, &atMs); err != nil {
			return nil, err
		}
		r.Payload = json.RawMessage(payload)
		r.OverlayVisible = overlay != 0
		r.RecordedAt = time.UnixMilli(atMs).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
