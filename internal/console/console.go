// Package console runs the line-oriented front end: read a task and a model
// name, print the optimized prompt.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sant0-9/promptgen/internal/generator"
)

// DefaultModel is used when the model line is blank.
const DefaultModel = "gpt-3.5-turbo"

const (
	taskPrompt  = "Describe your task in one sentence: "
	modelPrompt = "Model (gpt-3.5-turbo / gpt-4): "
	banner      = "\n🧠 Optimized Prompt:\n\n"
)

// Generator produces an optimized prompt; *generator.Optimizer satisfies it.
type Generator interface {
	Generate(ctx context.Context, task, model string) generator.Result
}

// Run asks for the task and the model, makes one generation call and prints
// the banner followed by the result. Generation failures are printed, not
// returned; only I/O errors are.
func Run(ctx context.Context, in io.Reader, out io.Writer, gen Generator) error {
	r := bufio.NewReader(in)

	task, err := ask(r, out, taskPrompt)
	if err != nil {
		return err
	}
	model, err := ask(r, out, modelPrompt)
	if err != nil {
		return err
	}

	result := gen.Generate(ctx, task, ResolveModel(model))

	_, err = fmt.Fprintf(out, "%s%s\n", banner, result)
	return err
}

// ResolveModel returns the trimmed model name, or DefaultModel when blank.
func ResolveModel(s string) string {
	if m := strings.TrimSpace(s); m != "" {
		return m
	}
	return DefaultModel
}

// ask writes the prompt and reads one trimmed line. End of input counts as
// an empty answer.
func ask(r *bufio.Reader, out io.Writer, prompt string) (string, error) {
	if _, err := io.WriteString(out, prompt); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
