package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/viant/occupancy-knn/dataset"
	"github.com/viant/occupancy-knn/index"
	"github.com/viant/occupancy-knn/knn"
	"github.com/viant/occupancy-knn/vector"
)

// ErrNotFound is returned when a dataset or sweep run does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is a SQLite-backed repository for datasets and sweep runs.
type Store struct {
	db *sql.DB
}

// Run is a persisted K sweep.
type Run struct {
	ID         string
	Reference  string
	Evaluation string
	CreatedAt  time.Time
	Results    []knn.Result
}

// New creates a Store and ensures its schema exists. The database should be
// opened with engine.Open so that knn_l2 is available to Nearest.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveDataset writes ds under name, replacing any dataset with that name.
func (s *Store) SaveDataset(ctx context.Context, name string, ds *dataset.Dataset) error {
	if name == "" {
		return fmt.Errorf("store: dataset name is empty")
	}
	names, err := json.Marshal(ds.Names())
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+examplesTable+` WHERE dataset = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO `+datasetsTable+`(name, features, created_at) VALUES(?, ?, ?)`,
		name, string(names), time.Now().UnixNano()); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+examplesTable+`(dataset, seq, features, label) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := 0; i < ds.Len(); i++ {
		blob, err := vector.EncodeFeatures(ds.Features(i))
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, name, i, blob, int(ds.Label(i))); err != nil {
			return fmt.Errorf("store: example %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadDataset reads the dataset saved under name.
func (s *Store) LoadDataset(ctx context.Context, name string) (*dataset.Dataset, error) {
	names, err := s.featureNames(ctx, name)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT features, label FROM `+examplesTable+` WHERE dataset = ? ORDER BY seq`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var examples []dataset.Example
	for rows.Next() {
		var (
			blob  []byte
			label int
		)
		if err := rows.Scan(&blob, &label); err != nil {
			return nil, err
		}
		features, err := vector.DecodeFeatures(blob)
		if err != nil {
			return nil, err
		}
		examples = append(examples, dataset.Example{Features: features, Label: dataset.Label(label)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dataset.New(names, examples)
}

// Datasets lists saved dataset names in lexical order.
func (s *Store) Datasets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM `+datasetsTable+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Nearest ranks the examples of a saved dataset by knn_l2 distance to query
// and returns the first k, breaking distance ties by dataset order.
func (s *Store) Nearest(ctx context.Context, name string, query []float64, k int) ([]index.Neighbor, error) {
	names, err := s.featureNames(ctx, name)
	if err != nil {
		return nil, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+examplesTable+` WHERE dataset = ?`, name).Scan(&n); err != nil {
		return nil, err
	}
	if err := index.CheckQuery(query, k, n, len(names)); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	blob, err := vector.EncodeFeatures(query)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT seq, knn_l2(features, ?) AS d FROM `+examplesTable+`
WHERE dataset = ? ORDER BY d, seq LIMIT ?`, blob, name, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]index.Neighbor, 0, k)
	for rows.Next() {
		var nb index.Neighbor
		if err := rows.Scan(&nb.Index, &nb.Distance); err != nil {
			return nil, err
		}
		out = append(out, nb)
	}
	return out, rows.Err()
}

// SaveSweep records a sweep of evaluation against reference and returns the
// generated run ID.
func (s *Store) SaveSweep(ctx context.Context, reference, evaluation string, results []knn.Result) (string, error) {
	runID := xid.New().String()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO `+sweepRunsTable+`(run_id, reference, evaluation, created_at) VALUES(?, ?, ?, ?)`,
		runID, reference, evaluation, time.Now().UnixNano()); err != nil {
		return "", err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+sweepResultsTable+`(run_id, k, error) VALUES(?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()
	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, runID, r.K, r.Error); err != nil {
			return "", fmt.Errorf("store: sweep k=%d: %w", r.K, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// LoadSweep reads a sweep run with its results ordered by K.
func (s *Store) LoadSweep(ctx context.Context, runID string) (*Run, error) {
	run := &Run{ID: runID}
	var created int64
	err := s.db.QueryRowContext(ctx, `SELECT reference, evaluation, created_at FROM `+sweepRunsTable+` WHERE run_id = ?`, runID).
		Scan(&run.Reference, &run.Evaluation, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sweep %q: %w", runID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	run.CreatedAt = time.Unix(0, created)

	rows, err := s.db.QueryContext(ctx, `SELECT k, error FROM `+sweepResultsTable+` WHERE run_id = ? ORDER BY k`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r knn.Result
		if err := rows.Scan(&r.K, &r.Error); err != nil {
			return nil, err
		}
		run.Results = append(run.Results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Store) featureNames(ctx context.Context, name string) ([]string, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT features FROM `+datasetsTable+` WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dataset %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("store: dataset %q features: %w", name, err)
	}
	return names, nil
}
