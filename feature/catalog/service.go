package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog-reconciler/core/match"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/catalog/bucket"
	"catalog-reconciler/feature/catalog/memory"
	"catalog-reconciler/feature/catalog/spreadsheet"
	"catalog-reconciler/feature/catalog/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageUnavailable is returned for s3:// locations when no storage client is configured.
	ErrStorageUnavailable = errors.New("object storage is not configured")
	// ErrDatabaseUnavailable is returned for db:// locations when no database is configured.
	ErrDatabaseUnavailable = errors.New("database is not configured")
)

// Options configures how the service opens catalogs.
type Options struct {
	// Spreadsheet applies to local files and storage objects.
	Spreadsheet spreadsheet.Options
	// MigrateTables creates destination tables that do not exist yet.
	MigrateTables bool
}

// Service resolves catalog locations and runs reconciliations.
type Service struct {
	engine *reconcile.Engine
	client storage.Client
	db     *gorm.DB
	opts   Options
	logger *zap.Logger
}

// NewService creates a new catalog service.
// client and db may be nil; locations that need them then fail to open.
func NewService(engine *reconcile.Engine, client storage.Client, db *gorm.DB, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine: engine,
		client: client,
		db:     db,
		opts:   opts,
		logger: logger,
	}
}

// OpenSource resolves a location into a source:
// s3://bucket/key, db://table, or a local file path.
func (s *Service) OpenSource(location string) (reconcile.Source, error) {
	if bucketName, key, ok := storage.ParseLocation(location); ok {
		if s.client == nil {
			return nil, fmt.Errorf("%s: %w", location, ErrStorageUnavailable)
		}
		return bucket.NewSource(s.client, bucketName, key, s.opts.Spreadsheet)
	}
	if name, ok := table.ParseLocation(location); ok {
		if s.db == nil {
			return nil, fmt.Errorf("%s: %w", location, ErrDatabaseUnavailable)
		}
		return table.NewSource(s.db, name), nil
	}
	return spreadsheet.NewFileSource(location, s.opts.Spreadsheet)
}

// OpenSink resolves a location into a sink using the same rules as OpenSource.
func (s *Service) OpenSink(location string) (reconcile.Sink, error) {
	if bucketName, key, ok := storage.ParseLocation(location); ok {
		if s.client == nil {
			return nil, fmt.Errorf("%s: %w", location, ErrStorageUnavailable)
		}
		return bucket.NewSink(s.client, bucketName, key, s.opts.Spreadsheet)
	}
	if name, ok := table.ParseLocation(location); ok {
		if s.db == nil {
			return nil, fmt.Errorf("%s: %w", location, ErrDatabaseUnavailable)
		}
		return table.NewSink(s.db, name, table.SinkOptions{Migrate: s.opts.MigrateTables}), nil
	}
	return spreadsheet.NewFileSink(location, s.opts.Spreadsheet)
}

// Merge reconciles the catalogs at primary and secondary into dest.
// Every location is resolved before any row is read.
func (s *Service) Merge(ctx context.Context, primary, secondary, dest string) (*reconcile.Summary, error) {
	primarySrc, err := s.OpenSource(primary)
	if err != nil {
		return nil, fmt.Errorf("failed to open primary catalog: %w", err)
	}
	secondarySrc, err := s.OpenSource(secondary)
	if err != nil {
		return nil, fmt.Errorf("failed to open secondary catalog: %w", err)
	}
	sink, err := s.OpenSink(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to open destination: %w", err)
	}

	s.logger.Info("Merging catalogs",
		zap.String("primary", primarySrc.Name()),
		zap.String("secondary", secondarySrc.Name()),
		zap.String("dest", sink.Name()),
		zap.Int("threshold", s.engine.Matcher().Threshold()),
	)

	return s.engine.Run(ctx, primarySrc, secondarySrc, sink)
}

// Reconcile merges two in-memory catalogs and returns the merged rows.
func (s *Service) Reconcile(ctx context.Context, primary, secondary []reconcile.RawRow) ([]reconcile.Row, *reconcile.Summary, error) {
	sink := memory.NewSink("response")
	summary, err := s.engine.Run(ctx,
		memory.NewSource("primary", primary),
		memory.NewSource("secondary", secondary),
		sink,
	)
	if err != nil {
		return nil, nil, err
	}
	return sink.Rows(), summary, nil
}

// Explain scores a pair of descriptions with the configured matcher.
func (s *Service) Explain(a, b string) match.Explanation {
	return s.engine.Matcher().Explain(a, b)
}
