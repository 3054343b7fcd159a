// Package sqlite writes a vocabulary report to a SQLite database for
// inspection. Nothing here feeds back into a corpus build.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/mindmap/pkg/mindmap/vocab"
)

// Store is a SQLite-backed vocabulary report
type Store struct {
	db *sql.DB
}

// StemRow is one exported stem
type StemRow struct {
	Stem      string
	Count     int
	FirstSeen int
}

// Open opens a SQLite database with WAL mode enabled and creates the
// report schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Export writes v to the database at path, replacing any earlier export.
func Export(ctx context.Context, path string, v *vocab.Vocabulary) error {
	st, err := Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer st.Close()
	return st.SaveVocabulary(ctx, v)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS stems (
	stem TEXT PRIMARY KEY,
	count INTEGER NOT NULL,
	first_seen INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS forms (
	stem TEXT NOT NULL,
	token TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(stem, token),
	FOREIGN KEY(stem) REFERENCES stems(stem) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS stopwords (
	term TEXT PRIMARY KEY
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveVocabulary replaces the stored report with v in one transaction.
func (s *Store) SaveVocabulary(ctx context.Context, v *vocab.Vocabulary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"forms", "stems", "stopwords"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stemStmt, err := tx.PrepareContext(ctx, `INSERT INTO stems (stem, count, first_seen) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stemStmt.Close()

	formStmt, err := tx.PrepareContext(ctx, `INSERT INTO forms (stem, token, count) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer formStmt.Close()

	for i, e := range v.Entries() {
		if _, err := stemStmt.ExecContext(ctx, e.Stem, e.Count, i); err != nil {
			return fmt.Errorf("insert stem %q: %w", e.Stem, err)
		}
		for _, f := range e.Forms {
			if _, err := formStmt.ExecContext(ctx, e.Stem, f.Token, f.Count); err != nil {
				return fmt.Errorf("insert form %q: %w", f.Token, err)
			}
		}
	}

	for _, term := range v.Stopwords().All() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO stopwords (term) VALUES (?)`, term); err != nil {
			return fmt.Errorf("insert stopword %q: %w", term, err)
		}
	}

	return tx.Commit()
}

// TopStems returns the k most frequent stems, ties in first-seen order.
func (s *Store) TopStems(ctx context.Context, k int) ([]StemRow, error) {
	if k <= 0 {
		k = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT stem, count, first_seen FROM stems ORDER BY count DESC, first_seen ASC LIMIT ?`, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StemRow
	for rows.Next() {
		var r StemRow
		if err := rows.Scan(&r.Stem, &r.Count, &r.FirstSeen); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Forms returns the surface forms stored for a stem.
func (s *Store) Forms(ctx context.Context, stem string) ([]vocab.Form, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT token, count FROM forms WHERE stem=? ORDER BY count DESC, token ASC`, stem)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []vocab.Form
	for rows.Next() {
		var f vocab.Form
		if err := rows.Scan(&f.Token, &f.Count); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Stopwords returns the stored stopword set, sorted.
func (s *Store) Stopwords(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT term FROM stopwords ORDER BY term`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, err
		}
		out = append(out, term)
	}
	return out, rows.Err()
}
