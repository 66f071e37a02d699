package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	eventInterval = time.Second
	tailWindow    = 5
)

// handleTranscriptionEvents pushes the transcript tail over SSE once per
// second for as long as the session exists. There is no close event: the
// stream simply ends when the session is gone or the client disconnects.
// Multiple observers can follow the same session; each gets its own copy.
func (s *Server) handleTranscriptionEvents(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.respondError(w, http.StatusInternalServerError, "Streaming unsupported.")
		return
	}

	if _, ok := s.sessions.Tail(sessionID, 1); !ok {
		s.respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(eventInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-ticker.C:
			tail, ok := s.sessions.Tail(sessionID, tailWindow)
			if !ok {
				return
			}
			if len(tail) == 0 {
				continue
			}

			payload, err := json.Marshal(map[string]interface{}{
				"session_id": sessionID,
				"transcript": tail,
				"timestamp":  time.Now().Format(time.RFC3339),
			})
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
