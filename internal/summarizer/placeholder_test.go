package summarizer

import (
	"fmt"
	"strings"
	"testing"
)

const sampleRecord = `Patient: John Doe
Diagnosis: hypertension
Assessment: stable
Medication: lisinopril 10mg daily
Allergy: penicillin (rash reaction)
Procedure: appendectomy in 2019
Follow-up in 3 months`

func TestPlaceholderDeterministic(t *testing.T) {
	first := Placeholder(sampleRecord, 2)
	for i := 0; i < 5; i++ {
		if got := Placeholder(sampleRecord, 2); got != first {
			t.Fatal("Placeholder() is not deterministic")
		}
	}
}

func TestPlaceholderCategories(t *testing.T) {
	got := Placeholder(sampleRecord, 1)

	wantLines := []string{
		"- Diagnosis: hypertension",
		"- Medication: lisinopril 10mg daily",
		"- Allergy: penicillin (rash reaction)",
		"- Procedure: appendectomy in 2019",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("summary is missing %q", line)
		}
	}

	if !strings.Contains(got, "Processed 1 PDF file(s)") {
		t.Error("summary is missing the document count")
	}
}

func TestPlaceholderEmptyCategories(t *testing.T) {
	got := Placeholder("nothing relevant here", 1)

	if count := strings.Count(got, "- (none detected in sample)"); count != 4 {
		t.Errorf("got %d empty-category markers, want 4", count)
	}
}

func TestPlaceholderCategoryCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "dx line %d\n", i)
	}

	got := Placeholder(b.String(), 1)

	count := 0
	for i := 0; i < 20; i++ {
		if strings.Contains(got, fmt.Sprintf("- dx line %d", i)) {
			count++
		}
	}
	if count != maxHitsPerCategory {
		t.Errorf("got %d diagnosis hits, want %d", count, maxHitsPerCategory)
	}
}

func TestPlaceholderPreservesLineOrder(t *testing.T) {
	got := Placeholder("dx alpha\nsome filler\ndx beta\n", 1)

	alpha := strings.Index(got, "- dx alpha")
	beta := strings.Index(got, "- dx beta")
	if alpha == -1 || beta == -1 {
		t.Fatal("expected both diagnosis lines in the summary")
	}
	if alpha > beta {
		t.Error("diagnosis lines are out of original order")
	}
}

func TestPlaceholderScansOnlySample(t *testing.T) {
	text := strings.Repeat("filler line\n", 200) + "dx buried far past the sample window\n"

	got := Placeholder(text, 1)
	if strings.Contains(got, "buried far past") {
		t.Error("placeholder scanned beyond the 1200-character sample")
	}
}
