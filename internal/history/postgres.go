package history

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"benchgate/internal/benchmark"
)

// PostgresStore implements Store using PostgreSQL, for teams sharing one
// history database across CI runners.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS benchmark_samples (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		mean DOUBLE PRECISION NOT NULL,
		median DOUBLE PRECISION NOT NULL,
		std_dev DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL DEFAULT 'ns',
		recorded_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_samples_name ON benchmark_samples(name, recorded_at);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// RecordRun inserts one sample per benchmark in the run.
func (s *PostgresStore) RecordRun(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `INSERT INTO benchmark_samples (name, mean, median, std_dev, unit, recorded_at) VALUES ($1, $2, $3, $4, $5, $6)`
	for _, r := range run.Benchmarks {
		if _, err := tx.Exec(query, r.Name, r.Mean, r.Median, r.StdDev, r.Unit, run.Timestamp); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert sample for %s: %w", r.Name, err)
		}
	}
	return tx.Commit()
}

// Samples retrieves the most recent samples for a benchmark, newest first.
func (s *PostgresStore) Samples(name string, limit int) ([]Sample, error) {
	query := `SELECT id, name, mean, median, std_dev, unit, recorded_at
		FROM benchmark_samples WHERE name = $1 ORDER BY recorded_at DESC LIMIT $2`
	rows, err := s.db.Query(query, name, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var sm Sample
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.Mean, &sm.Median, &sm.StdDev, &sm.Unit, &sm.RecordedAt); err != nil {
			return nil, err
		}
		samples = append(samples, sm)
	}
	return samples, rows.Err()
}

// Names lists the distinct benchmark names in the store, alphabetically.
func (s *PostgresStore) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT name FROM benchmark_samples ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
