package cmd

import (
	"fmt"

	"catalog-reconciler/core/config"
	"catalog-reconciler/core/database"
	"catalog-reconciler/core/match"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/catalog"
	"catalog-reconciler/feature/catalog/spreadsheet"
	"catalog-reconciler/feature/catalog/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newService builds the catalog service from configuration.
// Storage and database connections are only made when a location needs them.
func newService(cfg *config.Config, l *zap.Logger, locations ...string) (*catalog.Service, error) {
	matcher, err := match.NewMatcher(cfg.Match)
	if err != nil {
		return nil, err
	}
	engine := reconcile.NewEngine(matcher, l)

	var client storage.Client
	var db *gorm.DB
	for _, loc := range locations {
		if _, _, ok := storage.ParseLocation(loc); ok && client == nil {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to storage: %w", err)
			}
		}
		if _, ok := table.ParseLocation(loc); ok && db == nil {
			db, err = database.Connect(cfg.Database)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to database: %w", err)
			}
			l.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}
	}

	opts := catalog.Options{
		Spreadsheet: spreadsheet.Options{
			Sheet:     cfg.Match.Sheet,
			ReadSheet: cfg.Match.InputSheet,
			Header:    cfg.Match.Header,
		},
		MigrateTables: true,
	}
	return catalog.NewService(engine, client, db, opts, l), nil
}
