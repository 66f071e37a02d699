package summarizer

const (
	truncationMarker = "\n\n[...truncated...]\n\n"
	tailChars        = 1000
)

// Truncate bounds text to maxChars of source material for model input. Long
// documents keep their head and their final 1000 characters (dates,
// signatures tend to live at the end); the middle is dropped. This is a hard
// character cut, not word-aware.
func Truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}

	head := text[:maxChars-tailChars]
	tail := text[len(text)-tailChars:]
	return head + truncationMarker + tail
}
