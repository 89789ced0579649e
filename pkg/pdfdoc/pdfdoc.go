// Package pdfdoc renders plain text lines to a paginated PDF and extracts
// plain text back out of PDF files.
package pdfdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ledongthuc/pdf"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	// DefaultWrapWidth is the column at which lines are wrapped.
	DefaultWrapWidth = 95

	fontFamily = "Courier"
	fontSize   = 10
	lineHeight = 5.0
	margin     = 10.0
)

// ErrEmptyDocument is returned by Extract for zero-length input.
var ErrEmptyDocument = errors.New("pdfdoc: empty document")

// Document describes a text-only PDF.
type Document struct {
	Title     string
	Lines     []string
	WrapWidth int       // DefaultWrapWidth when zero
	CreatedAt time.Time // stamped into the metadata when set
}

// Render writes doc as an A4 PDF to w. Lines are word-wrapped; a new page
// starts when the current one is full. Empty lines are kept as blank rows.
func Render(w io.Writer, doc Document) error {
	width := doc.WrapWidth
	if width <= 0 {
		width = DefaultWrapWidth
	}

	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(margin, margin, margin)
	p.SetAutoPageBreak(true, margin)
	if doc.Title != "" {
		p.SetTitle(doc.Title, false)
	}
	if !doc.CreatedAt.IsZero() {
		p.SetCreationDate(doc.CreatedAt)
	}
	p.SetFont(fontFamily, "", fontSize)
	p.AddPage()

	// core fonts are cp1252
	tr := p.UnicodeTranslatorFromDescriptor("")
	for _, line := range doc.Lines {
		for _, row := range Wrap(line, width) {
			p.CellFormat(0, lineHeight, tr(row), "", 1, "L", false, 0, "")
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("pdfdoc: render: %w", err)
	}
	return nil
}

// Wrap splits s into rows of at most width columns. It breaks on word
// boundaries and hard-wraps words longer than width. An empty string yields
// one empty row.
func Wrap(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	rows := strings.Split(wrapped, "\n")
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return rows
}

// Extract returns the plain text of the PDF read from r. The parser panics on
// some malformed input; that is reported as an error.
func Extract(r io.ReaderAt, size int64) (text string, err error) {
	if size <= 0 {
		return "", ErrEmptyDocument
	}

	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("pdfdoc: malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("pdfdoc: open: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdfdoc: page %d: %w", i, err)
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	return b.String(), nil
}
