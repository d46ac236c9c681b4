package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"catalog-reconciler/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Decode streams the rows of a catalog. Completely blank rows are skipped;
// every other row is yielded as-is for the engine to validate.
func Decode(r io.Reader, format Format, opts Options) iter.Seq2[reconcile.RawRow, error] {
	switch format {
	case FormatXLSX:
		return decodeXLSX(r, opts)
	case FormatCSV:
		return decodeCSV(r, opts)
	default:
		return func(yield func(reconcile.RawRow, error) bool) {
			yield(nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format))
		}
	}
}

func decodeXLSX(r io.Reader, opts Options) iter.Seq2[reconcile.RawRow, error] {
	return func(yield func(reconcile.RawRow, error) bool) {
		f, err := excelize.OpenReader(r)
		if err != nil {
			yield(nil, fmt.Errorf("failed to open workbook: %w", err))
			return
		}
		defer f.Close()

		sheet := opts.ReadSheet
		if sheet == "" {
			sheet = f.GetSheetName(f.GetActiveSheetIndex())
		}
		if sheet == "" {
			yield(nil, errors.New("no sheets found in workbook"))
			return
		}

		rows, err := f.Rows(sheet)
		if err != nil {
			yield(nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err))
			return
		}
		defer rows.Close()

		skip := opts.Header
		rowNum := 0
		for rows.Next() {
			rowNum++
			cols, err := rows.Columns(excelize.Options{RawCellValue: true})
			if err != nil {
				yield(nil, fmt.Errorf("failed to read row: %w", err))
				return
			}
			if isBlank(cols) {
				continue
			}
			if skip {
				skip = false
				continue
			}

			row := toRawRow(cols)
			if len(cols) > 1 {
				if price, ok := numericCell(f, sheet, 2, rowNum, cols[1]); ok {
					row[1] = price
				}
			}
			if !yield(row, nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(nil, fmt.Errorf("failed to iterate rows: %w", err))
		}
	}
}

// numericCell converts a number cell to a decimal. Excel stores doubles with
// 17 significant digits ("19.899999999999999"), so the value is rebuilt from
// the float64 in its shortest form. Text cells are left to exact parsing.
func numericCell(f *excelize.File, sheet string, col, row int, value string) (decimal.Decimal, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, false
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return decimal.Decimal{}, false
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil || (typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(v), true
}

func decodeCSV(r io.Reader, opts Options) iter.Seq2[reconcile.RawRow, error] {
	return func(yield func(reconcile.RawRow, error) bool) {
		reader := csv.NewReader(r)
		reader.Comma = opts.comma()
		reader.FieldsPerRecord = -1

		skip := opts.Header
		first := true
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("failed to read csv: %w", err))
				return
			}
			if first && len(record) > 0 {
				record[0] = strings.TrimPrefix(record[0], "\ufeff")
				first = false
			}
			if isBlank(record) {
				continue
			}
			if skip {
				skip = false
				continue
			}
			if !yield(toRawRow(record), nil) {
				return
			}
		}
	}
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toRawRow(cols []string) reconcile.RawRow {
	row := make(reconcile.RawRow, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}
