package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no Gemini API key is available. Callers
// are expected to fall back to the placeholder summary.
var ErrNotConfigured = errors.New("no Gemini API key configured")

const systemInstruction = "You are a medical scribe. Produce a concise, plain-language summary of a patient's " +
	"health history based on provided records. Use short paragraphs and bullet points. " +
	"Avoid PHI leakage and avoid speculation; if uncertain, say so."

const (
	samplingTemperature = 0.2
	maxOutputTokens     = 600
)

// Summarize tries each candidate model once, in priority order. The first
// model that answers wins; if all fail the last error observed is returned.
func (s *implSummarizer) Summarize(ctx context.Context, prompt string) (string, string, error) {
	if s.apiKey == "" {
		return "", "", ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", "", fmt.Errorf("create client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](samplingTemperature),
		MaxOutputTokens:   maxOutputTokens,
	}

	var lastErr error
	for _, model := range s.models {
		result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
		if err != nil {
			s.logger.Warn(ctx, "Model %s failed: %v", model, err)
			lastErr = err
			continue
		}

		text := responseText(result)
		if text == "" {
			lastErr = fmt.Errorf("empty response from %s", model)
			continue
		}

		s.logger.Info(ctx, "Gemini model used: %s", model)
		return strings.TrimSpace(text), model, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no candidate models configured")
	}
	return "", "", fmt.Errorf("all candidate models failed: %w", lastErr)
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}
