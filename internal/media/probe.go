package media

import (
	"context"
	"strconv"
	"strings"
)

// probeDuration asks ffprobe for the media duration in seconds. Best effort:
// any failure, including ffprobe not being installed, yields zero.
func (s *implStore) probeDuration(ctx context.Context, path string) float64 {
	out, err := s.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		s.logger.Debug(ctx, "ffprobe failed for %s: %v", path, err)
		return 0
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0
	}
	return seconds
}
