package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromBytes opens data as a PDF and extracts text page by page, in page
// order, joined with blank lines. Pages that fail to extract are skipped
// without aborting the document.
func (e *implExtractor) FromBytes(data []byte) (text string) {
	// The parser can panic on malformed documents; treat that the same as
	// an unreadable file.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n\n")
}
