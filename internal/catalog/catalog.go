// Package catalog indexes the elements of ADM files in SQLite so they can be
// found by identifier across many files.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jacoelho/adm/document"
)

//go:embed schema.sql
var schemaSQL string

const lockRetryDelay = 50 * time.Millisecond

// Entry is one indexed element.
type Entry struct {
	Path      string
	ElementID string
	Kind      string
	Name      string
}

// Catalog is a SQLite-backed element index.
type Catalog struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open creates or opens the catalog database at path.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dataSourceName(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// journal_mode persists in the database file; the connection pragmas
	// travel in the DSN so every pooled connection gets them.
	if _, execErr := db.Exec("PRAGMA journal_mode=WAL"); execErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragma journal_mode: %w", execErr)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Catalog{db: db, path: path, lock: flock.New(path + ".lock")}, nil
}

func dataSourceName(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close closes the underlying database connection.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database location.
func (c *Catalog) Path() string { return c.path }

// Index records every element of doc under the file path, replacing whatever
// was indexed for that path before. It returns the number of elements
// written.
func (c *Catalog) Index(ctx context.Context, path string, doc *document.Document) (n int, err error) {
	ok, err := c.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return 0, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("acquire catalog lock: %s is held", c.lock.Path())
	}
	defer func() {
		if unlockErr := c.lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("release catalog lock: %w", unlockErr)
		}
	}()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin index tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE path = ?", path); err != nil {
		return 0, fmt.Errorf("delete previous index for %s: %w", path, err)
	}

	documentID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO documents (id, path, indexed_at) VALUES (?, ?, ?)",
		documentID, path, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return 0, fmt.Errorf("insert document %s: %w", path, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO elements (document_id, element_id, kind, name) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare element insert: %w", err)
	}
	defer stmt.Close()

	for _, el := range doc.Elements() {
		id := el.ID()
		if _, err := stmt.ExecContext(ctx, documentID, id.String(), id.Kind.Element(), el.Name()); err != nil {
			return 0, fmt.Errorf("insert element %s: %w", id, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit index tx: %w", err)
	}
	return n, nil
}

// Find returns every indexed element with the given identifier, ordered by
// file path.
func (c *Catalog) Find(ctx context.Context, elementID string) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT d.path, e.element_id, e.kind, e.name
        FROM elements e
        JOIN documents d ON d.id = e.document_id
        WHERE e.element_id = ?
        ORDER BY d.path`, elementID)
	if err != nil {
		return nil, fmt.Errorf("query elements: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.ElementID, &e.Kind, &e.Name); err != nil {
			return nil, fmt.Errorf("scan element: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate elements: %w", err)
	}
	return entries, nil
}

// Remove drops the index for a file path. It reports whether anything was
// indexed for it.
func (c *Catalog) Remove(ctx context.Context, path string) (bool, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM documents WHERE path = ?", path)
	if err != nil {
		return false, fmt.Errorf("delete index for %s: %w", path, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}
