// Package graphdb persists build graph snapshots in a per-project SQLite database.
package graphdb

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var _ ports.GraphStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS nodes (
	uri TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS edges (
	src      TEXT    NOT NULL REFERENCES nodes(uri) ON DELETE CASCADE,
	dst      TEXT    NOT NULL REFERENCES nodes(uri) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	PRIMARY KEY (src, dst)
);
CREATE INDEX IF NOT EXISTS edges_dst ON edges(dst);
`

// Store implements ports.GraphStore on <root>/.hostcache/graph.db.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Save replaces the stored snapshot with graph in a single transaction.
func (s *Store) Save(ctx context.Context, root string, graph *domain.BuildGraph) (err error) {
	db, err := s.open(ctx, root, true)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = zerr.Wrap(closeErr, domain.ErrGraphStoreWriteFailed.Error())
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrGraphStoreWriteFailed.Error())
	}
	if err := writeSnapshot(ctx, tx, graph); err != nil {
		_ = tx.Rollback()
		return zerr.With(zerr.Wrap(err, domain.ErrGraphStoreWriteFailed.Error()), "root", root)
	}
	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrGraphStoreWriteFailed.Error())
	}
	return nil
}

func writeSnapshot(ctx context.Context, tx *sql.Tx, graph *domain.BuildGraph) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM edges; DELETE FROM nodes;`); err != nil {
		return err
	}

	insertNode, err := tx.PrepareContext(ctx, `INSERT INTO nodes (uri) VALUES (?)`)
	if err != nil {
		return err
	}
	defer insertNode.Close() //nolint:errcheck // Closed with the transaction

	insertEdge, err := tx.PrepareContext(ctx, `INSERT INTO edges (src, dst, position) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertEdge.Close() //nolint:errcheck // Closed with the transaction

	for n := range graph.Nodes() {
		if _, err := insertNode.ExecContext(ctx, n.URI().String()); err != nil {
			return err
		}
	}
	for n := range graph.Nodes() {
		for i, dep := range n.Dependencies() {
			if _, err := insertEdge.ExecContext(ctx, n.URI().String(), dep.URI().String(), i); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load rebuilds the stored snapshot. A project without a database yields an empty graph.
func (s *Store) Load(ctx context.Context, root string) (*domain.BuildGraph, error) {
	graph := domain.NewBuildGraph()
	if _, err := os.Stat(dbPath(root)); errors.Is(err, fs.ErrNotExist) {
		return graph, nil
	}

	db, err := s.open(ctx, root, false)
	if err != nil {
		return nil, err
	}
	defer db.Close() //nolint:errcheck // Read-only use

	if err := readSnapshot(ctx, db, graph); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGraphStoreReadFailed.Error()), "root", root)
	}
	return graph, nil
}

func readSnapshot(ctx context.Context, db *sql.DB, graph *domain.BuildGraph) error {
	rows, err := db.QueryContext(ctx, `SELECT uri FROM nodes ORDER BY uri`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var uri string
		if err := rows.Scan(&uri); err != nil {
			_ = rows.Close()
			return err
		}
		graph.Put(domain.NewNode(domain.NewNodeURI(uri)))
	}
	if err := rows.Close(); err != nil {
		return err
	}

	edges, err := db.QueryContext(ctx, `SELECT src, dst FROM edges ORDER BY src, position`)
	if err != nil {
		return err
	}
	defer edges.Close() //nolint:errcheck // Checked through Err

	for edges.Next() {
		var src, dst string
		if err := edges.Scan(&src, &dst); err != nil {
			return err
		}
		from, okFrom := graph.Get(domain.NewNodeURI(src))
		to, okTo := graph.Get(domain.NewNodeURI(dst))
		if okFrom && okTo {
			from.DependsOn(to)
		}
	}
	return edges.Err()
}

func (s *Store) open(ctx context.Context, root string, create bool) (*sql.DB, error) {
	path := dbPath(root)
	if create {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrGraphStoreOpenFailed.Error()), "path", path)
		}
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGraphStoreOpenFailed.Error()), "path", path)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGraphStoreOpenFailed.Error()), "path", path)
	}
	return db, nil
}

func dbPath(root string) string {
	return filepath.Join(root, domain.DefaultGraphDBPath())
}
