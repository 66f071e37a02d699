package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nguyentantai21042004/medscribe/internal/transcribe"
)

func (s *Server) handleStartTranscription(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessions.Start(r.Context())
	if err != nil {
		if errors.Is(err, transcribe.ErrNotConfigured) {
			s.respondError(w, http.StatusBadRequest,
				"Speech backend not configured. Please set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY environment variables.")
			return
		}
		s.respondError(w, http.StatusBadRequest, "Failed to start transcription: "+err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"session_id": id,
		"status":     "started",
		"note":       "Transcription session created successfully. Ready for real-time streaming.",
	})
}

// handleStreamAudio accepts one raw audio chunk in the request body and
// reports the bytes received plus the current transcript length, whether or
// not the chunk produced a new entry.
func (s *Server) handleStreamAudio(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	chunk, err := io.ReadAll(r.Body)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Failed to read audio data.")
		return
	}

	if len(chunk) == 0 {
		if _, ok := s.sessions.Tail(sessionID, 1); !ok {
			s.respondError(w, http.StatusNotFound, "Session not found")
			return
		}
		s.respondError(w, http.StatusBadRequest, "No audio data provided")
		return
	}

	res, err := s.sessions.Feed(r.Context(), sessionID, chunk)
	if err != nil {
		if errors.Is(err, transcribe.ErrSessionNotFound) {
			s.respondError(w, http.StatusNotFound, "Session not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, "Failed to process audio: "+err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "audio_processed",
		"session_id":       sessionID,
		"audio_size":       res.AudioSize,
		"transcript_count": res.TranscriptCount,
	})
}

func (s *Server) handleEndTranscription(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	res, err := s.sessions.End(r.Context(), sessionID)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Session not found")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":       sessionID,
		"final_transcript": res.Transcript,
		"duration":         res.Duration.Seconds(),
		"total_entries":    res.TotalEntries,
	})
}
