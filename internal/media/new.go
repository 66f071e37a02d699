package media

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/medscribe/internal/logger"
	"github.com/nguyentantai21042004/medscribe/pkg/executor"
)

type implStore struct {
	dir      string
	executor executor.Executor
	logger   logger.Logger
	watcher  *fsnotify.Watcher

	mu    sync.RWMutex
	index map[string]Saved // keyed by stored name
}

// New creates a Store rooted at dir, indexing any media files already
// present there.
func New(dir string, exec executor.Executor, log logger.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch media dir: %w", err)
	}

	s := &implStore{
		dir:      dir,
		executor: exec,
		logger:   log,
		watcher:  watcher,
		index:    make(map[string]Saved),
	}

	if err := s.reindex(); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("index media dir: %w", err)
	}

	return s, nil
}
