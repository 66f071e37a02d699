package transcribe

import (
	"context"
	"errors"
	"time"
)

// Entry is one recognized (or simulated) utterance in a session transcript.
type Entry struct {
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	Speakers   []string  `json:"speakers"`
	Confidence float64   `json:"confidence"`
}

// Utterance is a single recognition result produced by a Recognizer, before
// it is stamped and appended to a session transcript.
type Utterance struct {
	Text       string
	Speakers   []string
	Confidence float64
}

// Recognizer turns a chunk of raw audio bytes into zero or more recognized
// utterances. The shipped implementation is a simulation; a real streaming
// backend can be swapped in without touching the session manager.
type Recognizer interface {
	Recognize(chunk []byte) []Utterance
}

// FeedResult reports the outcome of one processed audio chunk. It is
// returned whether or not the chunk yielded a new transcript entry.
type FeedResult struct {
	AudioSize       int
	TranscriptCount int
}

// EndResult carries the full accumulated transcript, handed back exactly
// once when a session ends.
type EndResult struct {
	Transcript   []Entry
	Duration     time.Duration
	TotalEntries int
}

// Manager owns all live transcription sessions for the process lifetime.
// Sessions are memory-resident only and are purged on End.
type Manager interface {
	Start(ctx context.Context) (string, error)
	Feed(ctx context.Context, sessionID string, chunk []byte) (FeedResult, error)

	// Tail returns a copy of the most recent n transcript entries in
	// chronological order. The second result is false when the session
	// does not exist.
	Tail(sessionID string, n int) ([]Entry, bool)

	End(ctx context.Context, sessionID string) (EndResult, error)
}

var (
	// ErrSessionNotFound reports an unknown or already-ended session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotConfigured reports missing speech backend credentials. Unlike
	// summarization there is no fallback backend, so Start surfaces this
	// to the caller.
	ErrNotConfigured = errors.New("transcription backend not configured")
)
