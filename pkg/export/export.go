// Package export renders tabular documents as CSV or PDF downloads.
package export

import (
	"errors"
	"fmt"
	"strings"
)

// Format names a supported output encoding.
type Format string

// Supported formats.
const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ErrUnsupportedFormat is returned for formats other than csv and pdf.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat accepts a case-insensitive format name. Blank means CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, raw)
	}
}

// ContentType is the MIME type of the rendered bytes.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Document is a titled table. Summary lines are printed above the table in PDF
// output and omitted from CSV.
type Document struct {
	Title   string
	Summary []string
	Headers []string
	Rows    [][]string
}

// Renderer turns a document into file bytes.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatCSV:
		return NewCSVRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
