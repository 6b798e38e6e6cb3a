package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/sant0-9/promptgen/internal/llm"
	"github.com/sant0-9/promptgen/internal/logging"
	"github.com/sant0-9/promptgen/internal/prompts"
)

type fakeProvider struct {
	content string
	err     error
	nilResp bool

	calls []*llm.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.nilResp {
		return nil, nil
	}
	return &llm.CompletionResponse{Content: f.content, Model: req.Model, FinishReason: "stop"}, nil
}

func TestOptimizerTrimsContent(t *testing.T) {
	fake := &fakeProvider{content: "  Write a haiku about rain.  "}
	got := NewOptimizer(fake, logging.Discard()).Generate(context.Background(), "haiku", "gpt-4")

	if got.Failed() {
		t.Fatalf("unexpected failure: %s", got)
	}
	if got.String() != "Write a haiku about rain." {
		t.Errorf("String() = %q", got.String())
	}
	if got.Text() != "Write a haiku about rain." {
		t.Errorf("Text() = %q", got.Text())
	}
}

func TestOptimizerFailure(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeProvider
		want string
	}{
		{"timeout", &fakeProvider{err: errors.New("timeout")}, "Error: timeout"},
		{"auth", &fakeProvider{err: errors.New("openai error (status 401): Incorrect API key provided")}, "Error: openai error (status 401): Incorrect API key provided"},
		{"nil response", &fakeProvider{nilResp: true}, "Error: empty completion response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewOptimizer(tt.fake, logging.Discard()).Generate(context.Background(), "task", "gpt-3.5-turbo")
			if !got.Failed() {
				t.Fatal("expected failure")
			}
			if got.String() != tt.want {
				t.Errorf("String() = %q, want %q", got.String(), tt.want)
			}
			if got.Text() != "" {
				t.Errorf("Text() = %q, want empty", got.Text())
			}
		})
	}
}

func TestOptimizerRequest(t *testing.T) {
	fake := &fakeProvider{content: "ok"}
	NewOptimizer(fake, logging.Discard()).Generate(context.Background(), "plan a trip", "gpt-3.5-turbo")

	if len(fake.calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(fake.calls))
	}
	req := fake.calls[0]
	if req.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q", req.Model)
	}
	if req.Temperature != 0.4 || req.MaxTokens != 300 {
		t.Errorf("Temperature = %v, MaxTokens = %d; want 0.4, 300", req.Temperature, req.MaxTokens)
	}
	want := prompts.ComposeOptimized("plan a trip").Messages()
	if len(req.Messages) != 2 || req.Messages[0] != want[0] || req.Messages[1] != want[1] {
		t.Errorf("Messages = %+v, want %+v", req.Messages, want)
	}
}

func TestReusableRequest(t *testing.T) {
	fake := &fakeProvider{content: "  You are an expert...\n{input}\n"}
	got, err := NewReusable(fake, logging.Discard()).Generate(context.Background(), "summarize meeting notes")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "  You are an expert...\n{input}\n" {
		t.Errorf("Generate() = %q, want content untouched", got)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(fake.calls))
	}
	req := fake.calls[0]
	if req.Model != "gpt-4" {
		t.Errorf("Model = %q, want gpt-4", req.Model)
	}
	if req.Temperature != 0.7 || req.MaxTokens != 1000 {
		t.Errorf("Temperature = %v, MaxTokens = %d; want 0.7, 1000", req.Temperature, req.MaxTokens)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("Messages = %+v, want a single user message", req.Messages)
	}
	want := prompts.ComposeReusable("summarize meeting notes").User
	if req.Messages[0].Content != want {
		t.Errorf("Content = %q, want %q", req.Messages[0].Content, want)
	}
}

func TestReusablePropagatesError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := NewReusable(&fakeProvider{err: boom}, logging.Discard()).Generate(context.Background(), "x")
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}
