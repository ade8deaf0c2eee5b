package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/model"
)

const generatePrompt = `Based on the following goal, generate 3 to 5 actionable to-do list tasks. ` +
	`For each task, provide a concise title and a brief one-sentence note describing it. ` +
	`Respond with JSON of the form {"tasks":[{"title":"...","notes":"..."}]}. Goal: %q`

// OpenAIGenerator asks an OpenAI-compatible chat endpoint for a structured
// task breakdown. Any transport failure surfaces as ErrGenerationFailed; a
// response that parses but has the wrong shape yields an empty list instead.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

func NewOpenAIGenerator(cfg Config, log *zap.Logger) *OpenAIGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	httpClient := &http.Client{}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	clientCfg.HTTPClient = httpClient

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		log:    log,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, goal string) ([]model.Suggestion, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrEmptyGoal
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(generatePrompt, goal)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		g.log.Warn("generation request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		g.log.Warn("generation returned no choices")
		return nil, fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	suggestions, err := parseSuggestions(resp.Choices[0].Message.Content)
	if err != nil {
		g.log.Warn("generation response did not parse", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return suggestions, nil
}

// parseSuggestions decodes {"tasks":[{"title","notes"}]}. Malformed JSON is
// an error; well-formed JSON with a missing or wrong-typed tasks field is
// treated as empty output.
func parseSuggestions(raw string) ([]model.Suggestion, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty content")
	}

	var wrapper struct {
		Tasks []model.Suggestion `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, err
	}
	out := make([]model.Suggestion, 0, len(wrapper.Tasks))
	for _, suggestion := range wrapper.Tasks {
		if strings.TrimSpace(suggestion.Title) == "" {
			continue
		}
		out = append(out, suggestion)
	}
	return out, nil
}

var _ Generator = (*OpenAIGenerator)(nil)
var _ Generator = (*MockGenerator)(nil)
