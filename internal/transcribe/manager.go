package transcribe

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Start mints a fresh session id and inserts an empty active session.
func (m *implManager) Start(ctx context.Context) (string, error) {
	if !m.configured {
		return "", ErrNotConfigured
	}

	id := uuid.New().String()

	m.mu.Lock()
	m.sessions[id] = &session{id: id, startTime: time.Now()}
	m.mu.Unlock()

	m.logger.Info(ctx, "Transcription session started: %s", id)
	return id, nil
}

// Feed accepts one raw audio chunk for a session. The fixed delay stands in
// for recognition latency and is served outside the lock so concurrent
// operations on other sessions are never stalled by it.
func (m *implManager) Feed(ctx context.Context, sessionID string, chunk []byte) (FeedResult, error) {
	m.mu.Lock()
	_, ok := m.sessions[sessionID]
	m.mu.Unlock()
	if !ok {
		return FeedResult{}, ErrSessionNotFound
	}

	select {
	case <-time.After(m.feedDelay):
	case <-ctx.Done():
		return FeedResult{}, ctx.Err()
	}

	utterances := m.recognizer.Recognize(chunk)

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		// Ended while the chunk was being processed.
		return FeedResult{}, ErrSessionNotFound
	}

	for _, u := range utterances {
		speakers := u.Speakers
		if len(speakers) == 0 {
			speakers = []string{"Unknown"}
		}
		sess.transcript = append(sess.transcript, Entry{
			Text:       u.Text,
			Timestamp:  time.Now(),
			Speakers:   speakers,
			Confidence: u.Confidence,
		})
	}

	return FeedResult{
		AudioSize:       len(chunk),
		TranscriptCount: len(sess.transcript),
	}, nil
}

// Tail is non-mutating and safe to call from any number of observers; each
// gets its own copy of the slice.
func (m *implManager) Tail(sessionID string, n int) ([]Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}

	start := 0
	if n > 0 && len(sess.transcript) > n {
		start = len(sess.transcript) - n
	}

	tail := make([]Entry, len(sess.transcript)-start)
	copy(tail, sess.transcript[start:])
	return tail, true
}

// End atomically removes the session and hands back its entire transcript.
// The id is permanently invalid afterwards.
func (m *implManager) End(ctx context.Context, sessionID string) (EndResult, error) {
	m.mu.Lock()
	sess, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return EndResult{}, ErrSessionNotFound
	}

	transcript := sess.transcript
	if transcript == nil {
		transcript = []Entry{}
	}

	result := EndResult{
		Transcript:   transcript,
		Duration:     time.Since(sess.startTime),
		TotalEntries: len(transcript),
	}

	m.logger.Info(ctx, "Transcription session ended: %s (%d entries, %s)",
		sessionID, result.TotalEntries, result.Duration)
	return result, nil
}
