package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-reconciler/core/match"

	"go.uber.org/zap"
)

// Engine merges a primary catalog (descriptions) with a secondary catalog (prices).
type Engine struct {
	matcher *match.Matcher
	logger  *zap.Logger
}

// NewEngine creates an engine using the given matcher.
func NewEngine(matcher *match.Matcher, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{matcher: matcher, logger: logger}
}

// Matcher returns the matcher used to compare records.
func (e *Engine) Matcher() *match.Matcher {
	return e.matcher
}

// Run reads both catalogs completely, then writes one row per primary record
// that has an equivalent secondary record. For each primary record the first
// equivalent secondary record, in secondary order, provides the price; later
// equivalent records are ignored. Output order follows the primary catalog.
//
// The sink is opened only after both catalogs were read and is closed exactly
// once before Run returns.
func (e *Engine) Run(ctx context.Context, primary, secondary Source, sink Sink) (summary *Summary, err error) {
	start := time.Now()

	primaryRecords, err := Load(ctx, primary)
	if err != nil {
		return nil, err
	}
	secondaryRecords, err := Load(ctx, secondary)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Catalogs loaded",
		zap.String("primary", primary.Name()),
		zap.Int("primary_records", len(primaryRecords)),
		zap.String("secondary", secondary.Name()),
		zap.Int("secondary_records", len(secondaryRecords)),
	)

	if err := sink.Open(ctx); err != nil {
		return nil, fmt.Errorf("failed to open sink %s: %w", sink.Name(), err)
	}
	defer func() {
		if closeErr := sink.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close sink %s: %w", sink.Name(), closeErr))
			summary = nil
		}
	}()

	summary, err = e.merge(ctx, primaryRecords, secondaryRecords, sink)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Reconciliation finished",
		zap.String("sink", sink.Name()),
		zap.Int("matched", summary.Matched),
		zap.Int("unmatched", summary.Unmatched),
		zap.Int("suppressed", summary.Suppressed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

// merge is the matching pass over two materialized catalogs.
func (e *Engine) merge(ctx context.Context, primary, secondary []Record, sink Sink) (*Summary, error) {
	summary := &Summary{
		Primary:   len(primary),
		Secondary: len(secondary),
	}

	// Primary descriptions already written; guards against a second row for
	// a primary record that matches several secondary records.
	emitted := make(map[string]struct{})

	for _, p := range primary {
		matched := false
		for _, s := range secondary {
			if !IsSameProduct(e.matcher, p, s) {
				continue
			}
			matched = true

			if _, done := emitted[p.Description]; done {
				summary.Suppressed++
				continue
			}

			if err := sink.Write(ctx, Row{Description: p.Description, Price: s.Price}); err != nil {
				return nil, fmt.Errorf("failed to write row %q to %s: %w", p.Description, sink.Name(), err)
			}
			emitted[p.Description] = struct{}{}
			summary.Matched++
		}

		if !matched {
			summary.Unmatched++
			e.logger.Debug("No match for primary record", zap.String("description", p.Description))
		}
	}

	return summary, nil
}

// Load reads every row of a source into memory.
func Load(ctx context.Context, src Source) ([]Record, error) {
	var records []Record
	line := 0
	for row, err := range src.Read(ctx) {
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src.Name(), err)
		}
		record, err := ParseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", src.Name(), line, err)
		}
		records = append(records, record)
	}
	return records, nil
}
