package prompts

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/sant0-9/promptgen/internal/llm"
)

// Marker is replaced by the task text in the Reusable template.
const Marker = "<<<TOPIC>>>"

//go:embed optimizer.md
var optimizerSystem string

// OptimizerSystem is the system instruction for optimized prompts.
var OptimizerSystem = strings.TrimSpace(optimizerSystem)

// Reusable asks for a copy-paste prompt template with an {input} placeholder.
// It contains Marker exactly once.
//
//go:embed reusable.md
var Reusable string

// Composed is the text sent to the completion service. An empty System means
// the request carries a single user message.
type Composed struct {
	System string
	User   string
}

// ComposeOptimized keeps the fixed system instruction separate from the
// user request that carries the task verbatim.
func ComposeOptimized(task string) Composed {
	return Composed{
		System: OptimizerSystem,
		User:   fmt.Sprintf("Task description: %s\n\nGenerate a concise, effective prompt.", task),
	}
}

// ComposeReusable substitutes the trimmed task for Marker once. The
// replacement is literal, so the task may contain anything, Marker included.
func ComposeReusable(task string) Composed {
	return Composed{
		User: strings.Replace(Reusable, Marker, strings.TrimSpace(task), 1),
	}
}

// Messages returns the system message, if any, followed by the user message.
func (c Composed) Messages() []llm.Message {
	msgs := make([]llm.Message, 0, 2)
	if c.System != "" {
		msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: c.System})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: c.User})
}
