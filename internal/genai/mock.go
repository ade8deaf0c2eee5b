package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/taskpad/taskpad/internal/model"
)

// MockGenerator returns a fixed four-task breakdown templated with the goal.
// Deterministic and side-effect-free; the only failure mode is a cancelled
// wait.
type MockGenerator struct {
	delay time.Duration
}

func NewMockGenerator(delay time.Duration) *MockGenerator {
	return &MockGenerator{delay: delay}
}

func (g *MockGenerator) Generate(ctx context.Context, goal string) ([]model.Suggestion, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrEmptyGoal
	}
	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.delay):
		}
	}
	return []model.Suggestion{
		{Title: fmt.Sprintf("Setup project for '%s'", goal), Notes: "Initialize repository, setup build tools."},
		{Title: "Create core components", Notes: "Build out the main pieces needed."},
		{Title: fmt.Sprintf("Implement logic for '%s'", goal), Notes: "Write the business logic and state management."},
		{Title: "Write tests", Notes: "Ensure everything works as expected with unit and integration tests."},
	}, nil
}
