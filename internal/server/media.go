package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nguyentantai21042004/medscribe/internal/media"
)

const multipartMemoryLimit = 32 << 20

// handleUploadAudio accepts 1..N files in the "audios" multipart field.
// Individual files that fail validation or saving are dropped; the request
// fails only when nothing survives.
func (s *Server) handleUploadAudio(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		s.respondError(w, http.StatusBadRequest, "No audio files provided.")
		return
	}

	uploads := r.MultipartForm.File["audios"]
	if len(uploads) == 0 {
		s.respondError(w, http.StatusBadRequest, "No audio files provided.")
		return
	}

	var saved []media.Saved
	for _, header := range uploads {
		if header.Filename == "" {
			continue
		}

		f, err := header.Open()
		if err != nil {
			continue
		}
		item, err := s.store.Save(r.Context(), header.Filename, f)
		f.Close()
		if err != nil {
			s.logger.Warn(r.Context(), "Skipping upload %s: %v", header.Filename, err)
			continue
		}
		saved = append(saved, item)
	}

	if len(saved) == 0 {
		s.respondError(w, http.StatusBadRequest, "No valid audio files were uploaded.")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"files": saved})
}

// handleServeMedia streams a stored file by its stored name. Knowing the
// name is the only authorization there is.
func (s *Server) handleServeMedia(w http.ResponseWriter, r *http.Request) {
	path, err := s.store.Path(chi.URLParam(r, "filename"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, "Media not found.")
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"files": s.store.List()})
}
