package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"address-datagen/internal/models"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DB is the subset of pgx shared by *pgxpool.Pool and *pgx.Conn.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository implements catalog and sample storage for PostgreSQL
type Repository struct {
	db DB
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// Connect opens a pool and pings it, retrying while the database comes up.
func Connect(ctx context.Context, dsn string, attempts uint) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	err := retry.Do(
		func() error {
			p, err := pgxpool.New(ctx, dsn)
			if err != nil {
				return err
			}
			if err := p.Ping(ctx); err != nil {
				p.Close()
				return err
			}
			pool = p
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(1*time.Second),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("database not ready")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "repository: failed to connect")
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS postcodes (
	id BIGSERIAL PRIMARY KEY,
	county VARCHAR(255) NOT NULL,
	state VARCHAR(255) NOT NULL,
	postcode VARCHAR(16) NOT NULL,
	UNIQUE (county, state, postcode)
);
CREATE TABLE IF NOT EXISTS streets (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS samples (
	run_id UUID NOT NULL,
	idx INTEGER NOT NULL,
	text TEXT NOT NULL,
	labels SMALLINT[] NOT NULL,
	codes BIGINT[] NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`

// CreateSchema creates the catalog and sample tables if they do not exist.
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "repository: failed to create schema")
	}
	return nil
}

// ListPostalRecords returns the postal-code catalog ordered by id
func (r *Repository) ListPostalRecords(ctx context.Context) ([]models.PostalRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT id, county, state, postcode FROM postcodes ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "repository: failed to query postcodes")
	}
	defer rows.Close()

	var records []models.PostalRecord
	for rows.Next() {
		var rec models.PostalRecord
		if err := rows.Scan(&rec.ID, &rec.County, &rec.State, &rec.Postcode); err != nil {
			return nil, errors.Wrap(err, "repository: failed to scan postcode")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "repository: error iterating postcodes")
	}
	return records, nil
}

// ListStreets returns the street-name catalog ordered by name
func (r *Repository) ListStreets(ctx context.Context) ([]models.Street, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM streets ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "repository: failed to query streets")
	}
	defer rows.Close()

	var streets []models.Street
	for rows.Next() {
		var s models.Street
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, errors.Wrap(err, "repository: failed to scan street")
		}
		streets = append(streets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "repository: error iterating streets")
	}
	return streets, nil
}

// ImportPostalRecords bulk-inserts postal records, skipping ones already stored.
// Ids are assigned by the database in input order. It returns the number of new rows.
func (r *Repository) ImportPostalRecords(ctx context.Context, records []models.PostalRecord) (int64, error) {
	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = []any{rec.County, rec.State, rec.Postcode}
	}
	return r.importRows(ctx, "postcodes", []string{"county", "state", "postcode"}, rows)
}

// ImportStreets bulk-inserts street names, skipping ones already stored.
// Ids are assigned by the database in input order. It returns the number of new rows.
func (r *Repository) ImportStreets(ctx context.Context, streets []models.Street) (int64, error) {
	rows := make([][]any, len(streets))
	for i, s := range streets {
		rows[i] = []any{s.Name}
	}
	return r.importRows(ctx, "streets", []string{"name"}, rows)
}

// importRows copies rows into a transaction-scoped staging table, then moves the ones
// that do not conflict with a unique constraint into table.
func (r *Repository) importRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "repository: failed to begin %s import", table)
	}
	defer tx.Rollback(ctx)

	staging := "import_" + table
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = pgx.Identifier{c}.Sanitize()
	}
	colList := strings.Join(cols, ", ")

	create := fmt.Sprintf(`CREATE TEMP TABLE %s ON COMMIT DROP AS SELECT 0::BIGINT AS ord, %s FROM %s WITH NO DATA`,
		pgx.Identifier{staging}.Sanitize(), colList, pgx.Identifier{table}.Sanitize())
	if _, err := tx.Exec(ctx, create); err != nil {
		return 0, errors.Wrapf(err, "repository: failed to create staging table for %s", table)
	}

	if _, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{staging},
		append([]string{"ord"}, columns...),
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return append([]any{int64(i)}, rows[i]...), nil
		}),
	); err != nil {
		return 0, errors.Wrapf(err, "repository: failed to copy %s", table)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s) SELECT %s FROM %s ORDER BY ord ON CONFLICT DO NOTHING`,
		pgx.Identifier{table}.Sanitize(), colList, colList, pgx.Identifier{staging}.Sanitize())
	tag, err := tx.Exec(ctx, insert)
	if err != nil {
		return 0, errors.Wrapf(err, "repository: failed to insert %s", table)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errors.Wrapf(err, "repository: failed to commit %s import", table)
	}
	return tag.RowsAffected(), nil
}

// SaveSamples stores the samples of one generation run.
func (r *Repository) SaveSamples(ctx context.Context, runID uuid.UUID, samples []models.Sample) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"samples"},
		[]string{"run_id", "idx", "text", "labels", "codes"},
		pgx.CopyFromSlice(len(samples), func(i int) ([]any, error) {
			s := samples[i]
			labels := make([]int16, len(s.Labels))
			for j, l := range s.Labels {
				labels[j] = int16(l)
			}
			return []any{runID, s.Index, s.Text, labels, s.Codes}, nil
		}),
	)
	if err != nil {
		return 0, errors.Wrapf(err, "repository: failed to copy samples for run %s", runID)
	}
	return n, nil
}

// ListSamples returns the samples of a run in index order.
func (r *Repository) ListSamples(ctx context.Context, runID uuid.UUID) ([]models.Sample, error) {
	rows, err := r.db.Query(ctx,
		`SELECT idx, text, labels, codes FROM samples WHERE run_id = $1 ORDER BY idx`, runID)
	if err != nil {
		return nil, errors.Wrap(err, "repository: failed to query samples")
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var (
			s      models.Sample
			labels []int16
		)
		if err := rows.Scan(&s.Index, &s.Text, &labels, &s.Codes); err != nil {
			return nil, errors.Wrap(err, "repository: failed to scan sample")
		}
		s.Labels = make([]int, len(labels))
		for j, l := range labels {
			s.Labels[j] = int(l)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "repository: error iterating samples")
	}
	return samples, nil
}

// Count returns the number of rows in one of the repository's tables.
func (r *Repository) Count(ctx context.Context, table string) (int64, error) {
	switch table {
	case "postcodes", "streets", "samples":
	default:
		return 0, errors.Newf("repository: unknown table %q", table)
	}
	var count int64
	sql := "SELECT COUNT(*) FROM " + pgx.Identifier{table}.Sanitize()
	if err := r.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, errors.Wrapf(err, "repository: failed to count %s", table)
	}
	return count, nil
}
