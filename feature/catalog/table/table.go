package table

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"strings"

	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/feature/catalog/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Scheme is the location prefix for database tables.
const Scheme = "db://"

// DefaultBatchSize is the number of rows per INSERT statement.
const DefaultBatchSize = 100

// ParseLocation extracts the table name from a db://table location.
func ParseLocation(location string) (string, bool) {
	name, found := strings.CutPrefix(location, Scheme)
	if !found || name == "" || strings.ContainsAny(name, "/ `'\";") {
		return "", false
	}
	return name, true
}

// Source reads description and price columns from a table, ordered by id.
type Source struct {
	db    *gorm.DB
	table string
}

// NewSource creates a source over the given table.
func NewSource(db *gorm.DB, table string) *Source {
	return &Source{db: db, table: table}
}

// Name returns the db:// location of the table.
func (s *Source) Name() string {
	return Scheme + s.table
}

// Read streams the table rows. NULL columns are passed through as nil
// and rejected when the row is parsed.
func (s *Source) Read(ctx context.Context) iter.Seq2[reconcile.RawRow, error] {
	return func(yield func(reconcile.RawRow, error) bool) {
		rows, err := s.db.WithContext(ctx).
			Table(s.table).
			Select("description", "price").
			Order("id").
			Rows()
		if err != nil {
			yield(nil, fmt.Errorf("failed to query %s: %w", s.table, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var description sql.NullString
			var price decimal.NullDecimal
			if err := rows.Scan(&description, &price); err != nil {
				yield(nil, fmt.Errorf("failed to scan %s: %w", s.table, err))
				return
			}

			row := reconcile.RawRow{nil, nil}
			if description.Valid {
				row[0] = description.String
			}
			if price.Valid {
				row[1] = price.Decimal
			}
			if !yield(row, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to iterate %s: %w", s.table, err))
		}
	}
}

// SinkOptions configures a table sink.
type SinkOptions struct {
	// Migrate creates or updates the destination table on Open.
	Migrate bool
	// BatchSize is the number of rows per INSERT. Defaults to DefaultBatchSize.
	BatchSize int
}

// Sink buffers merged rows and inserts them in batches on Close.
type Sink struct {
	db    *gorm.DB
	table string
	opts  SinkOptions

	// ctx is the context given to Open; the inserts on Close run under it.
	ctx  context.Context
	open bool
	rows []models.Product
}

// NewSink creates a sink writing to the given table.
func NewSink(db *gorm.DB, table string, opts SinkOptions) *Sink {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Sink{db: db, table: table, opts: opts}
}

// Name returns the db:// location of the table.
func (s *Sink) Name() string {
	return Scheme + s.table
}

// Open migrates the destination table when configured.
func (s *Sink) Open(ctx context.Context) error {
	if s.opts.Migrate {
		if err := s.db.WithContext(ctx).Table(s.table).AutoMigrate(&models.Product{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", s.table, err)
		}
	}
	s.ctx = ctx
	s.open = true
	s.rows = s.rows[:0]
	return nil
}

// Write buffers one row.
func (s *Sink) Write(_ context.Context, row reconcile.Row) error {
	if !s.open {
		return fmt.Errorf("sink %s is not open", s.Name())
	}
	s.rows = append(s.rows, models.Product{Description: row.Description, Price: row.Price})
	return nil
}

// Close inserts the buffered rows.
func (s *Sink) Close() error {
	if !s.open {
		return nil
	}
	s.open = false
	if len(s.rows) == 0 {
		return nil
	}

	rows := s.rows
	s.rows = nil
	if err := s.db.WithContext(s.ctx).Table(s.table).CreateInBatches(&rows, s.opts.BatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", s.table, err)
	}
	return nil
}
