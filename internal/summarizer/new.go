package summarizer

import (
	"github.com/nguyentantai21042004/medscribe/internal/config"
	"github.com/nguyentantai21042004/medscribe/internal/logger"
)

type implSummarizer struct {
	apiKey string
	models []string
	logger logger.Logger
}

// New creates a Summarizer over cfg's candidate models. An operator-supplied
// override model is tried before the configured priority list.
func New(cfg config.GeminiConfig, log logger.Logger) Summarizer {
	models := make([]string, 0, len(cfg.Models)+1)
	if cfg.Model != "" {
		models = append(models, cfg.Model)
	}
	models = append(models, cfg.Models...)

	return &implSummarizer{
		apiKey: cfg.APIKey,
		models: models,
		logger: log,
	}
}
