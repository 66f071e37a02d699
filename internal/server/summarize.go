package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/medscribe/internal/summarizer"
)

const maxPromptChars = 24000

// handleSummarize accepts PDF uploads in the "files" multipart field,
// extracts their text, and returns a plain-language summary. Without an AI
// credential the deterministic placeholder is returned instead of an error.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		s.respondError(w, http.StatusBadRequest, "No files provided. Please upload one or more PDFs.")
		return
	}

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		s.respondError(w, http.StatusBadRequest, "No files provided. Please upload one or more PDFs.")
		return
	}

	var texts []string
	for _, header := range uploads {
		if header.Filename == "" {
			continue
		}
		// Non-PDF uploads are skipped silently; siblings still process.
		mimetype := strings.ToLower(header.Header.Get("Content-Type"))
		if !strings.Contains(mimetype, "pdf") && !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
			continue
		}

		f, err := header.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			continue
		}

		if text := s.extractor.FromBytes(data); text != "" {
			texts = append(texts, text)
		}
	}

	if len(texts) == 0 {
		s.respondError(w, http.StatusBadRequest, "No readable text was extracted from the uploaded PDFs.")
		return
	}

	combined := summarizer.Truncate(strings.Join(texts, "\n\n"), maxPromptChars)
	prompt := summarizer.BuildPrompt(combined, len(texts))

	content, model, err := s.summarizer.Summarize(r.Context(), prompt)
	if err == nil {
		s.logger.Info(r.Context(), "Using summarization model: %s", model)
		s.respondJSON(w, http.StatusOK, map[string]string{
			"summary": content,
			"model":   model,
		})
		return
	}

	note := "AI summarization unavailable: " + err.Error()
	if errors.Is(err, summarizer.ErrNotConfigured) {
		note = "No AI credential configured; returned a keyword-based draft instead."
	}

	s.logger.Info(r.Context(), "Using summarization model: placeholder (%v)", err)
	s.respondJSON(w, http.StatusOK, map[string]string{
		"summary": summarizer.Placeholder(combined, len(texts)),
		"model":   "placeholder",
		"note":    note,
	})
}

type exportRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// handleExportSummary renders a summary into a docx stored alongside the
// media files, so the returned URL is served by the media route.
func (s *Server) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if strings.TrimSpace(req.Summary) == "" {
		s.respondError(w, http.StatusBadRequest, "Summary text is required.")
		return
	}
	if req.Title == "" {
		req.Title = "Health Summary"
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ".docx"
	if err := summarizer.ExportDocx(req.Title, req.Summary, filepath.Join(s.store.Dir(), name)); err != nil {
		s.logger.Error(r.Context(), "Export summary: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to export summary.")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"name": name,
		"url":  "/media/audio/" + name,
	})
}
