package summarizer

import (
	"fmt"
	"strings"
)

const (
	sampleChars        = 1200
	maxHitsPerCategory = 8
)

var (
	diagnosisKeys  = []string{"diag", "dx", "impression", "assessment"}
	medicationKeys = []string{"med", "rx", "prescrib", "dosage"}
	allergyKeys    = []string{"allerg", "reaction"}
	procedureKeys  = []string{"procedure", "surgery", "operation"}
)

const placeholderTemplate = `Placeholder health summary (no API key detected). Processed %d PDF file(s).

High-level overview:
- The records include multiple visits and findings. This is only a rough, automated draft.

Possible diagnoses/assessments noted:
%s

Possible medications mentioned:
%s

Possible allergies:
%s

Possible procedures:
%s

Next steps:
- Provide a GEMINI_API_KEY to enable an AI-generated, plain-language health history summary.
- Verify details directly in the source PDFs before using clinically.`

// Placeholder builds a deterministic keyword-mined draft summary, used when
// no API key is configured or every model call fails. Only the first 1200
// characters of the input are scanned.
func Placeholder(combined string, fileCount int) string {
	sample := combined
	if len(sample) > sampleChars {
		sample = sample[:sampleChars]
	}
	sample = strings.ReplaceAll(sample, "\n\n", "\n")

	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return fmt.Sprintf(placeholderTemplate,
		fileCount,
		bulletList(grep(lines, diagnosisKeys)),
		bulletList(grep(lines, medicationKeys)),
		bulletList(grep(lines, allergyKeys)),
		bulletList(grep(lines, procedureKeys)),
	)
}

// grep collects lines containing any of the keyword substrings,
// case-insensitively, in original order, up to the per-category cap.
func grep(lines []string, keys []string) []string {
	var hits []string
	for _, line := range lines {
		low := strings.ToLower(line)
		for _, k := range keys {
			if strings.Contains(low, k) {
				hits = append(hits, line)
				break
			}
		}
		if len(hits) == maxHitsPerCategory {
			break
		}
	}
	return hits
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- (none detected in sample)"
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
