package extract

// Extractor pulls plain text out of an uploaded document.
type Extractor interface {
	// FromBytes returns the concatenated page text of a PDF, or the empty
	// string when the document cannot be read. Extraction failure is never
	// an error; it is signaled only by absence of output.
	FromBytes(data []byte) string
}
