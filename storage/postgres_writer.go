package storage

import (
	"database/sql"
	"fmt"
	"time"

	"autoria-scraper/models"
	"autoria-scraper/utils"

	_ "github.com/lib/pq"
)

const createListingsTable = `
	CREATE TABLE IF NOT EXISTS autoria_listings (
		id           SERIAL PRIMARY KEY,
		run_id       UUID         NOT NULL,
		position     INTEGER      NOT NULL,
		title        TEXT         NOT NULL,
		phone_number TEXT,
		description  TEXT,
		brand        TEXT,
		model        TEXT,
		region       TEXT,
		scraped_at   TIMESTAMP    NOT NULL DEFAULT NOW(),
		UNIQUE (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_autoria_listings_run   ON autoria_listings (run_id);
	CREATE INDEX IF NOT EXISTS idx_autoria_listings_brand ON autoria_listings (brand, model);
	`

const insertListing = `
	INSERT INTO autoria_listings (run_id, position, title, phone_number, description, brand, model, region, scraped_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (run_id, position) DO NOTHING
	`

// PostgresWriter stores scraped records in PostgreSQL
type PostgresWriter struct {
	db     *sql.DB
	logger utils.Reporter
}

// NewPostgresWriter opens the database and pings it
func NewPostgresWriter(connStr string, logger utils.Reporter) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTable creates the autoria_listings table if it doesn't exist
func (w *PostgresWriter) CreateTable() error {
	if _, err := w.db.Exec(createListingsTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'autoria_listings' is ready")
	return nil
}

// Save implements RecordSink
func (w *PostgresWriter) Save(run models.Run, records []models.ListingRecord) error {
	return w.BatchInsert(run, records)
}

// BatchInsert inserts one run's records in a single transaction
func (w *PostgresWriter) BatchInsert(run models.Run, records []models.ListingRecord) (err error) {
	if len(records) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(insertListing)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err = stmt.Exec(listingArgs(run, i+1, r)...); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Inserted %d records into PostgreSQL (run %s)", len(records), run.ID)
	return nil
}

// listingArgs orders one record's values to match insertListing's placeholders
func listingArgs(run models.Run, position int, r models.ListingRecord) []interface{} {
	return []interface{}{
		run.ID,
		position,
		r.Title,
		r.PhoneNumber,
		r.Description,
		run.Criteria.Brand,
		run.Criteria.Model,
		run.Criteria.Region,
		run.StartedAt,
	}
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}
