package summarizer

import "context"

// Summarizer produces plain-language summaries of extracted medical record
// text through the Gemini API.
type Summarizer interface {
	// Summarize sends the prompt to each candidate model in priority order
	// and returns the summary text together with the model that produced it.
	Summarize(ctx context.Context, prompt string) (content string, model string, err error)
}
