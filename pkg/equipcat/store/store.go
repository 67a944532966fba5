// Package store persists resolved catalog entries in SQLite.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dm329/equipcat/pkg/equipcat/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DefaultBatchSize is how many entries are upserted per transaction.
const DefaultBatchSize = 100

const schema = `
CREATE TABLE IF NOT EXISTS equipment_catalog (
	id                   TEXT PRIMARY KEY,
	tipo                 TEXT NOT NULL,
	tipo_apparecchiatura TEXT NOT NULL,
	marca                TEXT NOT NULL,
	modello              TEXT NOT NULL,
	specs                TEXT,
	is_active            INTEGER NOT NULL DEFAULT 1,
	is_user_defined      INTEGER NOT NULL DEFAULT 0,
	usage_count          INTEGER NOT NULL DEFAULT 0,
	created_at           TIMESTAMP NOT NULL,
	updated_at           TIMESTAMP NOT NULL,
	UNIQUE (tipo_apparecchiatura, marca, modello)
)`

const upsertQuery = `
INSERT INTO equipment_catalog (id, tipo, tipo_apparecchiatura, marca, modello, specs, created_at, updated_at)
VALUES (:id, :tipo, :tipo_apparecchiatura, :marca, :modello, :specs, :created_at, :updated_at)
ON CONFLICT (tipo_apparecchiatura, marca, modello) DO UPDATE SET
	tipo = excluded.tipo,
	specs = excluded.specs,
	is_active = 1,
	updated_at = excluded.updated_at`

// Record is one row of the equipment_catalog table.
type Record struct {
	ID                  uuid.UUID `db:"id"`
	Tipo                string    `db:"tipo"`
	TipoApparecchiatura string    `db:"tipo_apparecchiatura"`
	Marca               string    `db:"marca"`
	Modello             string    `db:"modello"`
	Specs               *string   `db:"specs"`
	IsActive            bool      `db:"is_active"`
	IsUserDefined       bool      `db:"is_user_defined"`
	UsageCount          int       `db:"usage_count"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// Entry converts the record back into a catalog entry.
func (r Record) Entry() (models.CatalogEntry, error) {
	e := models.CatalogEntry{
		TipoExcel:           r.Tipo,
		TipoApparecchiatura: r.TipoApparecchiatura,
		Marca:               r.Marca,
		Modello:             r.Modello,
	}
	if r.Specs != nil {
		var specs models.Specs
		if err := json.Unmarshal([]byte(*r.Specs), &specs); err != nil {
			return e, fmt.Errorf("decode specs of %s: %w", r.ID, err)
		}
		e.Specs = &specs
	}
	return e, nil
}

// UpsertResult summarizes an upsert run.
type UpsertResult struct {
	Inserted int
	Updated  int
	Failed   int
	// BatchErrors holds one error per failed batch.
	BatchErrors []error
}

// Store is the SQLite-backed equipment catalog.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the catalog database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert inserts entries, or updates the existing row with the same
// form category, brand and model. Entries are written in transactions of
// batchSize; a failed batch is rolled back and counted, the rest still run.
func (s *Store) Upsert(ctx context.Context, entries []models.CatalogEntry, batchSize int) (UpsertResult, error) {
	var result UpsertResult
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	before, err := s.Count(ctx)
	if err != nil {
		return result, err
	}

	written := 0
	for start := 0; start < len(entries); start += batchSize {
		end := min(start+batchSize, len(entries))
		if err := s.upsertBatch(ctx, entries[start:end]); err != nil {
			result.Failed += end - start
			result.BatchErrors = append(result.BatchErrors,
				fmt.Errorf("batch %d: %w", start/batchSize+1, err))
			continue
		}
		written += end - start
	}

	after, err := s.Count(ctx)
	if err != nil {
		return result, err
	}
	result.Inserted = after - before
	result.Updated = written - result.Inserted
	return result, nil
}

func (s *Store) upsertBatch(ctx context.Context, batch []models.CatalogEntry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, e := range batch {
		rec, err := newRecord(e, now)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, upsertQuery, rec); err != nil {
			return fmt.Errorf("upsert %s/%s/%s: %w", e.TipoApparecchiatura, e.Marca, e.Modello, err)
		}
	}
	return tx.Commit()
}

func newRecord(e models.CatalogEntry, now time.Time) (Record, error) {
	rec := Record{
		ID:                  uuid.New(),
		Tipo:                e.TipoExcel,
		TipoApparecchiatura: e.TipoApparecchiatura,
		Marca:               e.Marca,
		Modello:             e.Modello,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if e.Specs != nil {
		data, err := json.Marshal(e.Specs)
		if err != nil {
			return rec, err
		}
		specs := string(data)
		rec.Specs = &specs
	}
	return rec, nil
}

// Count returns the number of catalog rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM equipment_catalog`); err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	return n, nil
}

// CountActive returns the number of active catalog rows.
func (s *Store) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM equipment_catalog WHERE is_active = 1`); err != nil {
		return 0, fmt.Errorf("count active catalog: %w", err)
	}
	return n, nil
}

// ListByForm returns the active rows of one form category ordered by brand and model.
// An empty form returns every active row.
func (s *Store) ListByForm(ctx context.Context, form string) ([]Record, error) {
	var recs []Record
	err := s.db.SelectContext(ctx, &recs, `
		SELECT id, tipo, tipo_apparecchiatura, marca, modello, specs,
		       is_active, is_user_defined, usage_count, created_at, updated_at
		FROM equipment_catalog
		WHERE is_active = 1 AND (? = '' OR tipo_apparecchiatura = ?)
		ORDER BY tipo_apparecchiatura, marca, modello
	`, form, form)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return recs, nil
}
