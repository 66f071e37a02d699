package transcribe

import (
	"sync"
	"time"

	"github.com/nguyentantai21042004/medscribe/internal/logger"
)

type session struct {
	id         string
	startTime  time.Time
	transcript []Entry
}

type implManager struct {
	recognizer Recognizer
	configured bool
	logger     logger.Logger
	feedDelay  time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a Manager. configured gates Start: without speech backend
// credentials every Start fails and no session is ever created.
func New(rec Recognizer, configured bool, log logger.Logger) Manager {
	return &implManager{
		recognizer: rec,
		configured: configured,
		logger:     log,
		feedDelay:  100 * time.Millisecond,
		sessions:   make(map[string]*session),
	}
}
