// Package generator synthesizes historical facts through the configured
// LLM backend: yearly narrative summaries, single-event details, and
// structured lists of dated events.
package generator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/apperrors"
	"github.com/tarihce/tarihce-engine/pkg/llm"
	"github.com/tarihce/tarihce-engine/pkg/models"
	"github.com/tarihce/tarihce-engine/pkg/prompts"
)

// synthesisTemperature is used for all generation requests.
const synthesisTemperature = 0.7

// Service synthesizes facts that are missing from cache and store.
// The backend is an untrusted oracle: free text comes back as-is, while
// event lists go through the parse/normalize protocol in events.go.
type Service interface {
	// SynthesizeSummary produces a narrative for (year, category).
	SynthesizeSummary(ctx context.Context, year int, category string) (string, error)

	// SynthesizeDetail produces a narrative about one event.
	SynthesizeDetail(ctx context.Context, date time.Time, title string) (string, error)

	// SynthesizeEvents produces a normalized, sorted list of dated events
	// for (year, category). Malformed model output never surfaces as an
	// error; only backend faults do.
	SynthesizeEvents(ctx context.Context, year int, category string) ([]models.CandidateEvent, error)
}

type generatorService struct {
	client llm.Client
	logger *zap.Logger
}

// NewService creates a Service backed by the given LLM client.
func NewService(client llm.Client, logger *zap.Logger) Service {
	return &generatorService{
		client: client,
		logger: logger.Named("generator"),
	}
}

var _ Service = (*generatorService)(nil)

func (s *generatorService) SynthesizeSummary(ctx context.Context, year int, category string) (string, error) {
	prompt := prompts.BuildYearlySummaryPrompt(year, category)

	text, err := s.client.GenerateResponse(ctx, prompt, prompts.SystemMessage, synthesisTemperature)
	if err != nil {
		s.logger.Error("Summary synthesis failed",
			zap.Int("year", year),
			zap.String("category", category),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrGenerationFailed, err)
	}

	return text, nil
}

func (s *generatorService) SynthesizeDetail(ctx context.Context, date time.Time, title string) (string, error) {
	prompt := prompts.BuildEventDetailPrompt(date, title)

	text, err := s.client.GenerateResponse(ctx, prompt, prompts.SystemMessage, synthesisTemperature)
	if err != nil {
		s.logger.Error("Detail synthesis failed",
			zap.String("title", title),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrGenerationFailed, err)
	}

	return text, nil
}

func (s *generatorService) SynthesizeEvents(ctx context.Context, year int, category string) ([]models.CandidateEvent, error) {
	prompt := prompts.BuildEventListPrompt(year, category)

	raw, err := s.client.GenerateResponse(ctx, prompt, prompts.SystemMessage, synthesisTemperature)
	if err != nil {
		s.logger.Error("Event synthesis failed",
			zap.Int("year", year),
			zap.String("category", category),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGenerationFailed, err)
	}

	events := parseEventList(raw, year, category, s.logger)
	s.logger.Info("Events synthesized",
		zap.Int("year", year),
		zap.String("category", category),
		zap.Int("count", len(events)))

	return events, nil
}
