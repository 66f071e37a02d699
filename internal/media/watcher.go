package media

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch follows filesystem events in the media directory so the index stays
// truthful when files are cleaned up (or dropped in) by hand. Stored files
// themselves are write-once; the watcher never touches disk.
func (s *implStore) Watch(ctx context.Context) error {
	s.logger.Info(ctx, "Media watcher started. Monitoring: %s", s.dir)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Media watcher stopped")
			return ctx.Err()

		case event, ok := <-s.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			name := filepath.Base(event.Name)
			switch {
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				s.mu.Lock()
				_, known := s.index[name]
				delete(s.index, name)
				s.mu.Unlock()
				if known {
					s.logger.Info(ctx, "Media removed externally: %s", name)
				}

			case event.Op&fsnotify.Create != 0 && AllowedName(name):
				s.mu.Lock()
				if _, known := s.index[name]; !known {
					s.index[name] = Saved{
						Name:     name,
						URL:      "/media/audio/" + name,
						Mimetype: mimeFor(name),
					}
					s.logger.Debug(ctx, "Media added externally: %s", name)
				}
				s.mu.Unlock()
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error(ctx, "Media watcher error: %v", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (s *implStore) Close() error {
	return s.watcher.Close()
}
