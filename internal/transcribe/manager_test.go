package transcribe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/medscribe/internal/logger"
)

// alwaysRecognizer emits exactly one utterance per chunk.
type alwaysRecognizer struct{}

func (alwaysRecognizer) Recognize(chunk []byte) []Utterance {
	return []Utterance{{Text: "hello", Speakers: []string{"Speaker_1"}, Confidence: 0.9}}
}

// silentRecognizer never emits.
type silentRecognizer struct{}

func (silentRecognizer) Recognize(chunk []byte) []Utterance { return nil }

func newTestManager(t *testing.T, rec Recognizer, configured bool) *implManager {
	t.Helper()
	m := New(rec, configured, logger.New("error")).(*implManager)
	m.feedDelay = 0
	return m
}

func TestStartUnconfigured(t *testing.T) {
	m := newTestManager(t, alwaysRecognizer{}, false)

	_, err := m.Start(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)

	// No session must be created by a failed start.
	_, err = m.End(context.Background(), "anything")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStartIssuesFreshIDs(t *testing.T) {
	m := newTestManager(t, alwaysRecognizer{}, true)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := m.Start(ctx)
		require.NoError(t, err)
		require.False(t, seen[id], "session id %s reissued", id)
		seen[id] = true
	}
}

func TestFeedUnknownSession(t *testing.T) {
	m := newTestManager(t, alwaysRecognizer{}, true)

	_, err := m.Feed(context.Background(), "never-issued", []byte("chunk"))
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFeedAppendsAndCounts(t *testing.T) {
	m := newTestManager(t, alwaysRecognizer{}, true)
	ctx := context.Background()

	id, err := m.Start(ctx)
	require.NoError(t, err)

	chunk := make([]byte, 2000)
	for i := 1; i <= 3; i++ {
		res, err := m.Feed(ctx, id, chunk)
		require.NoError(t, err)
		assert.Equal(t, len(chunk), res.AudioSize)
		assert.Equal(t, i, res.TranscriptCount)
	}
}

func TestFeedReportsBytesWithoutEmission(t *testing.T) {
	m := newTestManager(t, silentRecognizer{}, true)
	ctx := context.Background()

	id, err := m.Start(ctx)
	require.NoError(t, err)

	res, err := m.Feed(ctx, id, []byte("tiny"))
	require.NoError(t, err)
	assert.Equal(t, 4, res.AudioSize)
	assert.Equal(t, 0, res.TranscriptCount)
}

func TestTailWindowAndOrder(t *testing.T) {
	m := newTestManager(t, alwaysRecognizer{}, true)
	ctx := context.Background()

	id, err := m.Start(ctx)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, err := m.Feed(ctx, id, []byte("chunk"))
		require.NoError(t, err)
	}

	tail, ok := m.Tail(id, 5)
	require.True(t, ok)
	assert.Len(t, tail, 5)

	all, ok := m.Tail(id, 0)
	require.True(t, ok)
	assert.Len(t, all, 8)

	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Timestamp.Before(all[i-1].Timestamp),
			"timestamps must be non-decreasing")
	}
}

func TestTailUnknownSession(t *testing.T) {
	m := newTestManager(t, alwaysRecognizer{}, true)

	_, ok := m.Tail("never-issued", 5)
	assert.False(t, ok)
}

func TestEndReturnsFullTranscriptOnce(t *testing.T) {
	m := newTestManager(t, alwaysRecognizer{}, true)
	ctx := context.Background()

	id, err := m.Start(ctx)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := m.Feed(ctx, id, []byte("chunk"))
		require.NoError(t, err)
	}

	tail, ok := m.Tail(id, 3)
	require.True(t, ok)

	res, err := m.End(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 7, res.TotalEntries)
	assert.Len(t, res.Transcript, 7)

	// The final transcript is the full history; any tail seen earlier is a
	// suffix of it.
	assert.Equal(t, tail, res.Transcript[len(res.Transcript)-len(tail):])

	// The id is now permanently invalid.
	_, err = m.End(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Feed(ctx, id, []byte("chunk"))
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, ok = m.Tail(id, 5)
	assert.False(t, ok)
}

func TestEndEmptySession(t *testing.T) {
	m := newTestManager(t, silentRecognizer{}, true)
	ctx := context.Background()

	id, err := m.Start(ctx)
	require.NoError(t, err)

	res, err := m.End(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, res.Transcript)
	assert.Empty(t, res.Transcript)
	assert.Zero(t, res.TotalEntries)
	assert.GreaterOrEqual(t, res.Duration.Seconds(), 0.0)
}
