package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nguyentantai21042004/medscribe/internal/config"
	"github.com/nguyentantai21042004/medscribe/internal/extract"
	"github.com/nguyentantai21042004/medscribe/internal/logger"
	"github.com/nguyentantai21042004/medscribe/internal/media"
	"github.com/nguyentantai21042004/medscribe/internal/summarizer"
	"github.com/nguyentantai21042004/medscribe/internal/transcribe"
)

// Server wires the HTTP surface over the domain components.
type Server struct {
	cfg        *config.Config
	logger     logger.Logger
	extractor  extract.Extractor
	summarizer summarizer.Summarizer
	store      media.Store
	sessions   transcribe.Manager
}

// New creates a Server instance.
func New(
	cfg *config.Config,
	log logger.Logger,
	ex extract.Extractor,
	sum summarizer.Summarizer,
	store media.Store,
	sessions transcribe.Manager,
) *Server {
	return &Server{
		cfg:        cfg,
		logger:     log,
		extractor:  ex,
		summarizer: sum,
		store:      store,
		sessions:   sessions,
	}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(int64(s.cfg.Server.MaxUploadMB) << 20))

	r.Get("/", s.handleIndex)

	r.Get("/media/audio", s.handleListMedia)
	r.Get("/media/audio/{filename}", s.handleServeMedia)
	r.Post("/upload-audio", s.handleUploadAudio)

	r.Post("/summarize", s.handleSummarize)
	r.Post("/summarize/export", s.handleExportSummary)

	r.Post("/transcribe/start", s.handleStartTranscription)
	r.Post("/transcribe/stream/{sessionID}", s.handleStreamAudio)
	r.Get("/transcribe/events/{sessionID}", s.handleTranscriptionEvents)
	r.Get("/transcribe/ws/{sessionID}", s.handleTranscriptionSocket)
	r.Post("/transcribe/end/{sessionID}", s.handleEndTranscription)

	return r
}
