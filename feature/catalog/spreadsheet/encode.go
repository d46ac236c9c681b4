package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"catalog-reconciler/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Encoder accumulates merged rows and writes the finished document.
type Encoder interface {
	// WriteRow appends one merged row.
	WriteRow(row reconcile.Row) error
	// WriteTo finishes the document and writes it to w. It must be called at most once.
	WriteTo(w io.Writer) (int64, error)
	// Close releases resources held by the encoder.
	Close() error
}

// NewEncoder creates an encoder for the given format.
func NewEncoder(format Format, opts Options) (Encoder, error) {
	var enc Encoder
	var err error
	switch format {
	case FormatXLSX:
		enc, err = newXLSXEncoder(opts)
	case FormatCSV:
		enc = newCSVEncoder(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if opts.Header {
		if err := writeHeader(enc); err != nil {
			enc.Close()
			return nil, err
		}
	}
	return enc, nil
}

func writeHeader(enc Encoder) error {
	switch e := enc.(type) {
	case *xlsxEncoder:
		return e.setRow([]any{HeaderRow[0], HeaderRow[1]})
	case *csvEncoder:
		return e.w.Write(HeaderRow)
	}
	return nil
}

// xlsxEncoder writes rows through excelize's stream writer, which keeps
// memory flat for large catalogs.
type xlsxEncoder struct {
	f    *excelize.File
	sw   *excelize.StreamWriter
	next int
}

func newXLSXEncoder(opts Options) (*xlsxEncoder, error) {
	f := excelize.NewFile()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if defaultSheet := f.GetSheetName(0); defaultSheet != sheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
		}
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}
	return &xlsxEncoder{f: f, sw: sw, next: 1}, nil
}

func (e *xlsxEncoder) setRow(values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, e.next)
	if err != nil {
		return err
	}
	if err := e.sw.SetRow(cell, values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", e.next, err)
	}
	e.next++
	return nil
}

func (e *xlsxEncoder) WriteRow(row reconcile.Row) error {
	return e.setRow([]any{row.Description, cellPrice(row.Price)})
}

func (e *xlsxEncoder) WriteTo(w io.Writer) (int64, error) {
	if err := e.sw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush sheet: %w", err)
	}
	return e.f.WriteTo(w)
}

func (e *xlsxEncoder) Close() error {
	return e.f.Close()
}

// cellPrice returns a numeric cell value when the float64 form prints back
// to the same decimal, and the exact decimal text otherwise.
func cellPrice(price decimal.Decimal) any {
	f := price.InexactFloat64()
	if decimal.NewFromFloat(f).Equal(price) {
		return f
	}
	return price.String()
}

type csvEncoder struct {
	buf bytes.Buffer
	w   *csv.Writer
}

func newCSVEncoder(opts Options) *csvEncoder {
	e := &csvEncoder{}
	e.w = csv.NewWriter(&e.buf)
	e.w.Comma = opts.comma()
	return e
}

func (e *csvEncoder) WriteRow(row reconcile.Row) error {
	return e.w.Write([]string{row.Description, row.Price.String()})
}

func (e *csvEncoder) WriteTo(w io.Writer) (int64, error) {
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}
	return e.buf.WriteTo(w)
}

func (e *csvEncoder) Close() error {
	return nil
}
