// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/graph-poet/pkg/types"
)

const (
	dbFile     = "corpus.db"
	exportBase = "export"
)

// Store is a library of named corpora kept in SQLite. It stores corpus
// text only; word graphs are always rebuilt from it.
type Store struct {
	db  *sql.DB
	dir string
}

// OpenStore opens or creates the library database at dir/corpus.db and
// creates the schema if it does not exist.
func OpenStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS corpora (
			name TEXT PRIMARY KEY,
			origin TEXT,
			line_count INTEGER NOT NULL,
			imported_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS lines (
			corpus TEXT NOT NULL REFERENCES corpora(name) ON DELETE CASCADE,
			lineno INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (corpus, lineno)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Import reads every line from src and stores it under name, replacing any
// corpus already stored under that name. Nothing is written if src fails.
// A progress line goes to w; a nil w discards it.
func (s *Store) Import(ctx context.Context, name string, src Source, w io.Writer) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("corpus name is required")
	}
	if w == nil {
		w = io.Discard
	}

	lines, err := src.Lines(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx,
		`SELECT count(*) FROM corpora WHERE name = ?`, name,
	).Scan(&existing); err != nil {
		return 0, fmt.Errorf("checking corpus: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM lines WHERE corpus = ?`, name); err != nil {
		return 0, fmt.Errorf("deleting old lines: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO corpora (name, origin, line_count, imported_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			origin=excluded.origin, line_count=excluded.line_count, imported_at=excluded.imported_at`,
		name, src.Name(), len(lines), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("upserting corpus: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lines (corpus, lineno, text) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, line := range lines {
		if _, err := stmt.ExecContext(ctx, name, i, line); err != nil {
			return 0, fmt.Errorf("inserting line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}

	verb := "imported"
	if existing > 0 {
		verb = "replaced"
	}
	fmt.Fprintf(w, "%s %s (%d lines from %s)\n", verb, name, len(lines), src.Name())
	return len(lines), nil
}

// Lines returns the stored lines of name in their original order.
func (s *Store) Lines(ctx context.Context, name string) ([]string, error) {
	if err := s.mustExist(ctx, name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM lines WHERE corpus = ? ORDER BY lineno`, name)
	if err != nil {
		return nil, fmt.Errorf("%w: querying lines: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("%w: scanning line: %w", ErrUnavailable, err)
		}
		lines = append(lines, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return lines, nil
}

// List returns every stored corpus sorted by name.
func (s *Store) List(ctx context.Context) ([]types.CorpusInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, origin, line_count, imported_at FROM corpora ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying corpora: %w", err)
	}
	defer rows.Close()

	var infos []types.CorpusInfo
	for rows.Next() {
		var (
			info   types.CorpusInfo
			origin sql.NullString
		)
		if err := rows.Scan(&info.Name, &origin, &info.Lines, &info.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning corpus: %w", err)
		}
		info.Origin = origin.String
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Remove deletes name and its lines.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM corpora WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting corpus: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting corpus: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

func (s *Store) mustExist(ctx context.Context, name string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM corpora WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("looking up corpus: %w", err)
	}
	return nil
}

// ExportYAML writes the library manifest to dir/export.yaml and returns
// the path written.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	infos, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(infos)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dir, exportBase+".yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the library manifest to dir/export.json and returns
// the path written.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	infos, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dir, exportBase+".json")
	return path, os.WriteFile(path, data, 0o644)
}
