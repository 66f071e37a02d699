package summarizer

import (
	"strings"
	"testing"
)

func TestTruncateShortInputUnchanged(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
	}{
		{"empty", "", 2000},
		{"shorter than budget", "short medical note", 2000},
		{"exactly at budget", strings.Repeat("a", 2000), 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.text {
				t.Errorf("Truncate() changed input within budget")
			}
		})
	}
}

func TestTruncateLongInput(t *testing.T) {
	head := strings.Repeat("h", 5000)
	tail := strings.Repeat("t", 5000)
	text := head + tail
	budget := 4000

	got := Truncate(text, budget)

	if !strings.HasPrefix(got, text[:budget-1000]) {
		t.Error("output does not start with the first budget-1000 characters")
	}
	if !strings.HasSuffix(got, text[len(text)-1000:]) {
		t.Error("output does not end with the last 1000 characters")
	}
	if !strings.Contains(got, "[...truncated...]") {
		t.Error("output is missing the truncation marker")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Diagnosis: hypertension", 3)

	if !strings.Contains(prompt, "3 PDF medical record(s)") {
		t.Error("prompt is missing the document count")
	}
	if !strings.Contains(prompt, "Diagnosis: hypertension") {
		t.Error("prompt is missing the extracted text")
	}
}
