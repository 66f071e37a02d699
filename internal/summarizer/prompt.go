package summarizer

import "fmt"

const promptTemplate = `You are given text extracted from %d PDF medical record(s).
Task: Write a concise, plain-language summary of the patient's health history for a general audience.

Requirements:
- Use short paragraphs and bullet points where helpful.
- Summarize: key diagnoses, past procedures, medications (with doses if present), allergies, relevant labs/imaging, and follow-ups.
- Capture approximate timelines if clear (e.g., "in 2021", "recently").
- Avoid speculation; if unclear or conflicting, say that.
- Do not include personally identifiable information.
- Keep it under 350 words.

Extracted text:
---
%s
---`

// BuildPrompt assembles the bounded summarization prompt for fileCount
// record(s) whose combined extracted text has already been truncated.
func BuildPrompt(combined string, fileCount int) string {
	return fmt.Sprintf(promptTemplate, fileCount, combined)
}
