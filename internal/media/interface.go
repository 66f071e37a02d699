package media

import (
	"context"
	"io"
)

// Saved describes one stored media file as reported to clients.
type Saved struct {
	Name            string  `json:"name"`
	URL             string  `json:"url"`
	Mimetype        string  `json:"mimetype"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

// Store persists uploaded audio/video files under generated collision-free
// names and resolves stored names back to paths for serving. The stored name
// is the only valid retrieval key; files are never mutated after save.
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (Saved, error)
	Path(storedName string) (string, error)
	List() []Saved
	Dir() string

	// Watch keeps the in-memory index aligned with the directory, picking
	// up files added or removed outside the API. Blocks until ctx is done.
	Watch(ctx context.Context) error
	Close() error
}
