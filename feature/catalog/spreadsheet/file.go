package spreadsheet

import (
	"context"
	"fmt"
	"iter"
	"os"

	"catalog-reconciler/core/reconcile"
)

// FileSource reads a catalog from a local xlsx or csv file.
type FileSource struct {
	path   string
	format Format
	opts   Options
}

// NewFileSource validates that path has a supported extension and is readable.
func NewFileSource(path string, opts Options) (*FileSource, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	f.Close()

	return &FileSource{path: path, format: format, opts: opts}, nil
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Read streams the rows of the file. The file is closed when iteration stops.
func (s *FileSource) Read(ctx context.Context) iter.Seq2[reconcile.RawRow, error] {
	return func(yield func(reconcile.RawRow, error) bool) {
		f, err := os.Open(s.path)
		if err != nil {
			yield(nil, fmt.Errorf("failed to open catalog: %w", err))
			return
		}
		defer f.Close()

		for row, err := range Decode(f, s.format, s.opts) {
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// FileSink writes merged rows to a local xlsx or csv file.
// The file is created on Open and its content written on Close.
type FileSink struct {
	path   string
	format Format
	opts   Options

	file *os.File
	enc  Encoder
}

// NewFileSink creates a sink for path. The format follows the extension.
func NewFileSink(path string, opts Options) (*FileSink, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileSink{path: path, format: format, opts: opts}, nil
}

// Name returns the file path.
func (s *FileSink) Name() string {
	return s.path
}

// Open creates the destination file and prepares the encoder.
func (s *FileSink) Open(_ context.Context) error {
	enc, err := NewEncoder(s.format, s.opts)
	if err != nil {
		return err
	}

	file, err := os.Create(s.path)
	if err != nil {
		enc.Close()
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}

	s.file = file
	s.enc = enc
	return nil
}

// Write appends one row.
func (s *FileSink) Write(_ context.Context, row reconcile.Row) error {
	if s.enc == nil {
		return fmt.Errorf("sink %s is not open", s.path)
	}
	return s.enc.WriteRow(row)
}

// Close writes the document and closes the file.
func (s *FileSink) Close() error {
	if s.enc == nil {
		return nil
	}
	defer func() {
		s.enc = nil
		s.file = nil
	}()

	_, writeErr := s.enc.WriteTo(s.file)
	encErr := s.enc.Close()
	fileErr := s.file.Close()

	if writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, writeErr)
	}
	if encErr != nil {
		return encErr
	}
	return fileErr
}
