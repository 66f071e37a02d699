package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleTranscriptionSocket mirrors the SSE feed over a WebSocket for
// clients that prefer that transport. Same contract: the connection closes
// silently once the session no longer exists.
func (s *Server) handleTranscriptionSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if _, ok := s.sessions.Tail(sessionID, 1); !ok {
		s.respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), "WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

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

			msg := map[string]interface{}{
				"session_id": sessionID,
				"transcript": tail,
				"timestamp":  time.Now().Format(time.RFC3339),
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}
