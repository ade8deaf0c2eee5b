// Package genai turns a free-text goal into suggested tasks, either through
// an OpenAI-compatible endpoint or from static mock data when no API key is
// configured.
package genai

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/model"
)

// ErrGenerationFailed wraps every transport or parse failure; callers show
// one generic notice and retry manually.
var ErrGenerationFailed = errors.New("genai: task generation failed")

var ErrEmptyGoal = errors.New("genai: goal is required")

type Generator interface {
	Generate(ctx context.Context, goal string) ([]model.Suggestion, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// MockDelay simulates remote latency on the mock path.
	MockDelay time.Duration
}

// FromConfig returns the remote generator when an API key is configured and
// the deterministic mock otherwise.
func FromConfig(cfg Config, log *zap.Logger) Generator {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.APIKey == "" {
		log.Info("no AI credential configured, using mock generator")
		return NewMockGenerator(cfg.MockDelay)
	}
	return NewOpenAIGenerator(cfg, log)
}
