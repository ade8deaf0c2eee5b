package genai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockGeneratorReturnsFourTasksReferencingGoal(t *testing.T) {
	gen := NewMockGenerator(0)
	suggestions, err := gen.Generate(context.Background(), "learn the guitar")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(suggestions) != 4 {
		t.Fatalf("expected 4 mock tasks, got %d", len(suggestions))
	}
	referenced := false
	for _, suggestion := range suggestions {
		if suggestion.Title == "" {
			t.Fatalf("mock suggestion without title: %+v", suggestion)
		}
		if strings.Contains(suggestion.Title, "learn the guitar") {
			referenced = true
		}
	}
	if !referenced {
		t.Fatal("expected at least one title to reference the goal")
	}
}

func TestMockGeneratorIsDeterministic(t *testing.T) {
	gen := NewMockGenerator(0)
	first, _ := gen.Generate(context.Background(), "ship the release")
	second, _ := gen.Generate(context.Background(), "ship the release")
	if len(first) != len(second) {
		t.Fatal("expected identical output lengths")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("output differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMockGeneratorRejectsEmptyGoal(t *testing.T) {
	gen := NewMockGenerator(0)
	if _, err := gen.Generate(context.Background(), "  "); !errors.Is(err, ErrEmptyGoal) {
		t.Fatalf("expected ErrEmptyGoal, got %v", err)
	}
}

func TestMockGeneratorHonorsCancellation(t *testing.T) {
	gen := NewMockGenerator(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := gen.Generate(ctx, "anything"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseSuggestions(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "well formed",
			raw:  `{"tasks":[{"title":"A","notes":"a"},{"title":"B","notes":"b"}]}`,
			want: 2,
		},
		{
			name: "missing tasks field is empty output",
			raw:  `{"items":[{"title":"A"}]}`,
			want: 0,
		},
		{
			name: "wrong tasks type is a parse error",
			raw:     `{"tasks":"oops"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			raw:     `{"tasks":[`,
			wantErr: true,
		},
		{
			name:    "empty content",
			raw:     "   ",
			wantErr: true,
		},
		{
			name: "titleless entries are dropped",
			raw:  `{"tasks":[{"title":"","notes":"x"},{"title":"Keep","notes":"y"}]}`,
			want: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSuggestions(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d suggestions, got %d", tc.want, len(got))
			}
		})
	}
}

func TestFromConfigPicksBackend(t *testing.T) {
	if _, ok := FromConfig(Config{}, nil).(*MockGenerator); !ok {
		t.Fatal("expected mock generator without an API key")
	}
	if _, ok := FromConfig(Config{APIKey: "sk-test"}, nil).(*OpenAIGenerator); !ok {
		t.Fatal("expected remote generator with an API key")
	}
}
