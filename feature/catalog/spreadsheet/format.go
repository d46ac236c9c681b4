package spreadsheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for files that are neither xlsx nor csv.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Format is a spreadsheet file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFromPath derives the format from a file name or object key.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ContentType returns the MIME type used when uploading the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// Options controls how catalogs are decoded and encoded.
type Options struct {
	// Sheet is the worksheet written by encoders. Defaults to "Sheet1".
	Sheet string
	// ReadSheet is the worksheet read by decoders. Defaults to the active sheet.
	ReadSheet string
	// Header marks the first row as a header: skipped when reading, written when encoding.
	Header bool
	// Comma is the CSV field delimiter. Defaults to ','.
	Comma rune
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// HeaderRow is the header written when Options.Header is set.
var HeaderRow = []string{"description", "price"}
