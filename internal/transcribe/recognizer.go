package transcribe

import (
	"fmt"
	"math/rand"
	"sync"
)

const (
	minChunkBytes   = 1000
	emitProbability = 0.4
	minConfidence   = 0.85
	maxConfidence   = 0.98
	speakerCount    = 3
)

var cannedPhrases = []string{
	"Hello, how are you today?",
	"I'm doing well, thank you for asking.",
	"What brings you here today?",
	"I have an appointment scheduled.",
	"Let me check your records.",
	"Everything looks good so far.",
	"Do you have any questions?",
	"Thank you for your time.",
	"The patient reports feeling better.",
	"We should schedule a follow-up appointment.",
	"The medication seems to be working well.",
	"Please take this prescription to the pharmacy.",
}

// simulatedRecognizer is the placeholder speech backend: it performs no real
// recognition, emitting a canned utterance for roughly 40% of sufficiently
// large chunks, attributed to one of three synthetic speakers.
type simulatedRecognizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedRecognizer returns the stub Recognizer used until a genuine
// streaming backend is wired in.
func NewSimulatedRecognizer(seed int64) Recognizer {
	return &simulatedRecognizer{rng: rand.New(rand.NewSource(seed))}
}

func (r *simulatedRecognizer) Recognize(chunk []byte) []Utterance {
	if len(chunk) <= minChunkBytes {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rng.Float64() >= emitProbability {
		return nil
	}

	return []Utterance{{
		Text:       cannedPhrases[r.rng.Intn(len(cannedPhrases))],
		Speakers:   []string{fmt.Sprintf("Speaker_%d", r.rng.Intn(speakerCount)+1)},
		Confidence: minConfidence + r.rng.Float64()*(maxConfidence-minConfidence),
	}}
}
