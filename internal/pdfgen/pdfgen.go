// Package pdfgen renders plain text as a downloadable PDF document.
package pdfgen

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	pageSize   = "A4"
	marginMM   = 15.0
	fontFamily = "Arial"
	titleSize  = 16.0
	bodySize   = 12.0
	lineHeight = 8.0
)

// Render lays out content as a single text flow under a centered title and
// returns the document bytes. Content is expected to be plain text; strip
// Markdown before calling. Core PDF fonts are Latin-1, so characters
// outside that set are transliterated where possible.
func Render(content, title string) ([]byte, error) {
	doc := fpdf.New("P", "mm", pageSize, "")
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetTitle(title, false)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont(fontFamily, "B", titleSize)
	heading := cases.Title(language.English).String(title)
	doc.CellFormat(0, 10, tr(heading), "", 1, "C", false, 0, "")
	doc.Ln(lineHeight)

	doc.SetFont(fontFamily, "", bodySize)
	doc.MultiCell(0, lineHeight, tr(content), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
