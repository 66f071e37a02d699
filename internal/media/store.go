package media

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".mp3": true,
	".mp4": true,
	".m4a": true,
	".wav": true,
	".aac": true,
	".ogg": true,
}

// AllowedName reports whether filename carries an allow-listed audio/video
// extension. The check is case-insensitive.
func AllowedName(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeName strips path components from a client-supplied filename and
// collapses unsafe characters. The result is for display only; it is never
// used as a storage key.
func SanitizeName(filename string) string {
	base := filepath.Base(filepath.Clean(strings.ReplaceAll(filename, `\`, "/")))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.TrimLeft(base, ".")
	if base == "" || base == "_" {
		return ""
	}
	return base
}

// Save validates and stores one uploaded file under a freshly generated
// collision-free name that keeps the original extension.
func (s *implStore) Save(ctx context.Context, originalName string, r io.Reader) (Saved, error) {
	name := SanitizeName(originalName)
	if name == "" {
		return Saved{}, fmt.Errorf("missing filename")
	}
	if !AllowedName(name) {
		return Saved{}, fmt.Errorf("disallowed file type %q", filepath.Ext(name))
	}

	ext := strings.ToLower(filepath.Ext(name))
	storedName := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	destPath := filepath.Join(s.dir, storedName)

	f, err := os.Create(destPath)
	if err != nil {
		return Saved{}, fmt.Errorf("create %s: %w", destPath, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(destPath)
		return Saved{}, fmt.Errorf("write %s: %w", destPath, err)
	}
	if err := f.Close(); err != nil {
		return Saved{}, fmt.Errorf("close %s: %w", destPath, err)
	}

	saved := Saved{
		Name:            name,
		URL:             "/media/audio/" + storedName,
		Mimetype:        mimeFor(storedName),
		DurationSeconds: s.probeDuration(ctx, destPath),
	}

	s.mu.Lock()
	s.index[storedName] = saved
	s.mu.Unlock()

	s.logger.Info(ctx, "Stored media %s as %s", name, storedName)
	return saved, nil
}

// Path resolves a stored name to a servable file path. Anything that is not
// a bare filename inside the media directory is rejected.
func (s *implStore) Path(storedName string) (string, error) {
	if storedName == "" || strings.ContainsAny(storedName, `/\`) || strings.Contains(storedName, "..") {
		return "", fmt.Errorf("invalid media name %q", storedName)
	}

	path := filepath.Join(s.dir, storedName)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("media %s: %w", storedName, err)
	}
	return path, nil
}

// List returns the indexed files in stable (stored name) order.
func (s *implStore) List() []Saved {
	s.mu.RLock()
	names := make([]string, 0, len(s.index))
	for name := range s.index {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]Saved, 0, len(names))
	for _, name := range names {
		files = append(files, s.index[name])
	}
	s.mu.RUnlock()

	return files
}

func (s *implStore) Dir() string {
	return s.dir
}

// reindex seeds the index from files already on disk. Durations are not
// probed for pre-existing files.
func (s *implStore) reindex() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		if e.IsDir() || !AllowedName(e.Name()) {
			continue
		}
		s.index[e.Name()] = Saved{
			Name:     e.Name(),
			URL:      "/media/audio/" + e.Name(),
			Mimetype: mimeFor(e.Name()),
		}
	}
	return nil
}

func mimeFor(filename string) string {
	if mimetype := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); mimetype != "" {
		return mimetype
	}
	return "application/octet-stream"
}
