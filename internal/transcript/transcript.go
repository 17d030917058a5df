// Package transcript turns uploaded lecture files into plain text.
package transcript

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromUpload extracts the text of an uploaded transcript file. PDF files
// are parsed page by page; everything else is treated as plain text.
func FromUpload(filename string, content []byte) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return fromPDF(content)
	}
	return string(content), nil
}

func fromPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages that fail extraction are skipped rather than failing
			// the whole upload.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return b.String(), nil
}
