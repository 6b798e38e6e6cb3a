package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sant0-9/promptgen/internal/llm"
	"github.com/sant0-9/promptgen/internal/prompts"
)

// Request parameters for the two generators.
const (
	optimizerTemperature = 0.4
	optimizerMaxTokens   = 300

	// ReusableModel is the model every reusable prompt is generated with.
	ReusableModel       = "gpt-4"
	reusableTemperature = 0.7
	reusableMaxTokens   = 1000
)

// Optimizer turns a task description into a concise, optimized prompt.
type Optimizer struct {
	provider llm.Provider
	logger   *slog.Logger
}

func NewOptimizer(provider llm.Provider, logger *slog.Logger) *Optimizer {
	return &Optimizer{
		provider: provider,
		logger:   logger,
	}
}

// Generate makes one completion call with the given model. It never returns
// an error: any failure becomes a Failure result carrying the error text.
func (o *Optimizer) Generate(ctx context.Context, task, model string) Result {
	composed := prompts.ComposeOptimized(task)

	resp, err := complete(ctx, o.provider, o.logger, &llm.CompletionRequest{
		Model:       model,
		Messages:    composed.Messages(),
		MaxTokens:   optimizerMaxTokens,
		Temperature: optimizerTemperature,
	})
	if err != nil {
		return Failure(err.Error())
	}

	return Success(strings.TrimSpace(resp.Content))
}

// Reusable turns a task description into a reusable prompt template.
type Reusable struct {
	provider llm.Provider
	logger   *slog.Logger
}

func NewReusable(provider llm.Provider, logger *slog.Logger) *Reusable {
	return &Reusable{
		provider: provider,
		logger:   logger,
	}
}

// Generate makes one completion call and returns the first choice untouched.
// Errors are returned as-is for the caller's error surface.
func (r *Reusable) Generate(ctx context.Context, task string) (string, error) {
	composed := prompts.ComposeReusable(task)

	resp, err := complete(ctx, r.provider, r.logger, &llm.CompletionRequest{
		Model:       ReusableModel,
		Messages:    composed.Messages(),
		MaxTokens:   reusableMaxTokens,
		Temperature: reusableTemperature,
	})
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}

func complete(ctx context.Context, provider llm.Provider, logger *slog.Logger, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	logger.Debug("requesting completion",
		"provider", provider.Name(),
		"model", req.Model,
		"messages", len(req.Messages),
		"temperature", req.Temperature,
		"max_tokens", req.MaxTokens,
	)

	start := time.Now()
	resp, err := provider.Complete(ctx, req)
	if err == nil && resp == nil {
		err = errors.New("empty completion response")
	}
	if err != nil {
		logger.Warn("completion failed",
			"provider", provider.Name(),
			"model", req.Model,
			"elapsed", time.Since(start),
			"err", err,
		)
		return nil, err
	}

	logger.Info("completion finished",
		"provider", provider.Name(),
		"model", resp.Model,
		"elapsed", time.Since(start),
		"finish_reason", resp.FinishReason,
		"total_tokens", resp.Usage.TotalTokens,
	)
	return resp, nil
}
