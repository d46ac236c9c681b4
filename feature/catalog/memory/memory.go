package memory

import (
	"context"
	"errors"
	"iter"

	"catalog-reconciler/core/reconcile"
)

// Source yields rows held in memory.
type Source struct {
	name string
	rows []reconcile.RawRow
}

// NewSource creates a source over rows.
func NewSource(name string, rows []reconcile.RawRow) *Source {
	return &Source{name: name, rows: rows}
}

// Name returns the source name.
func (s *Source) Name() string {
	return s.name
}

// Read yields the rows in order.
func (s *Source) Read(_ context.Context) iter.Seq2[reconcile.RawRow, error] {
	return func(yield func(reconcile.RawRow, error) bool) {
		for _, row := range s.rows {
			if !yield(row, nil) {
				return
			}
		}
	}
}

// Sink collects merged rows in memory.
type Sink struct {
	name   string
	rows   []reconcile.Row
	open   bool
	closes int
}

// NewSink creates an empty sink.
func NewSink(name string) *Sink {
	return &Sink{name: name}
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return s.name
}

// Open resets the collected rows.
func (s *Sink) Open(_ context.Context) error {
	s.rows = []reconcile.Row{}
	s.open = true
	return nil
}

// Write appends one row.
func (s *Sink) Write(_ context.Context, row reconcile.Row) error {
	if !s.open {
		return errors.New("sink is not open")
	}
	s.rows = append(s.rows, row)
	return nil
}

// Close marks the sink closed.
func (s *Sink) Close() error {
	s.open = false
	s.closes++
	return nil
}

// Rows returns the collected rows.
func (s *Sink) Rows() []reconcile.Row {
	return s.rows
}

// Closes reports how many times Close was called.
func (s *Sink) Closes() int {
	return s.closes
}
