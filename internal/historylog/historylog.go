// Package historylog keeps an append-only record of each tolc invocation
// in a local SQLite database, for operators who want a local audit trail
// of what was compiled, when, and how far it got. It is write-only: tolc
// never reads this log back to decide whether to skip work, so it carries
// no incremental-recompilation behavior (an explicit Non-goal).
package historylog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Log wraps a SQLite connection to the history database.
type Log struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path and
// ensures its single table exists.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("pagbukas ng history log: %w", err)
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS compilations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			build_id    TEXT NOT NULL,
			source_path TEXT NOT NULL,
			started_at  TEXT NOT NULL,
			elapsed_ms  INTEGER NOT NULL,
			stage       TEXT NOT NULL,
			error_count INTEGER NOT NULL,
			succeeded   INTEGER NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("pag-iinit ng history log: %w", err)
	}
	return &Log{db: db}, nil
}

// Close releases the underlying connection.
func (l *Log) Close() error { return l.db.Close() }

// Entry is one row appended after a compilation attempt finishes.
type Entry struct {
	BuildID    string
	SourcePath string
	StartedAt  time.Time
	Elapsed    time.Duration
	Stage      string // "lexer" | "parser" | "analyzer" | "codegen" | "gcc" | "done"
	ErrorCount int
	Succeeded  bool
}

// Append inserts e as a new row. It never returns an error that should
// block compilation — cmd/tolc discards a failure to append and moves on,
// since the history log is a convenience, not part of the compile pipeline.
func (l *Log) Append(e Entry) error {
	_, err := l.db.Exec(
		`INSERT INTO compilations (build_id, source_path, started_at, elapsed_ms, stage, error_count, succeeded)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.BuildID, e.SourcePath, e.StartedAt.Format(time.RFC3339), e.Elapsed.Milliseconds(), e.Stage, e.ErrorCount, e.Succeeded,
	)
	return err
}
