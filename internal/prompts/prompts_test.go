package prompts

import (
	"strings"
	"testing"

	"github.com/sant0-9/promptgen/internal/llm"
)

func TestReusableHasOneMarker(t *testing.T) {
	if n := strings.Count(Reusable, Marker); n != 1 {
		t.Fatalf("Reusable contains %d markers, want 1", n)
	}
	if !strings.Contains(Reusable, "{input}") {
		t.Error("Reusable should mention the {input} placeholder")
	}
}

func TestComposeOptimized(t *testing.T) {
	tests := []struct {
		name string
		task string
	}{
		{"plain", "write a haiku about rain"},
		{"format verbs", "report 100% of %s and %d cases"},
		{"empty", ""},
		{"marker", Marker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeOptimized(tt.task)
			if got.System != OptimizerSystem {
				t.Errorf("System changed: %q", got.System)
			}
			want := "Task description: " + tt.task + "\n\nGenerate a concise, effective prompt."
			if got.User != want {
				t.Errorf("User = %q, want %q", got.User, want)
			}
		})
	}
}

func TestOptimizerSystem(t *testing.T) {
	if !strings.HasPrefix(OptimizerSystem, "You are a prompt engineering assistant.") {
		t.Errorf("OptimizerSystem = %q", OptimizerSystem)
	}
	if !strings.HasSuffix(OptimizerSystem, "Keep it concise but specific.") {
		t.Errorf("OptimizerSystem = %q", OptimizerSystem)
	}
}

func TestComposeReusable(t *testing.T) {
	pos := strings.Index(Reusable, Marker)

	tests := []struct {
		name string
		task string
		want string
	}{
		{"plain", "summarize meeting notes", "summarize meeting notes"},
		{"trimmed", "  \tsummarize meeting notes\n", "summarize meeting notes"},
		{"replacement syntax", `$1 ${topic} \1 & %s`, `$1 ${topic} \1 & %s`},
		{"marker", Marker, Marker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeReusable(tt.task)
			if got.System != "" {
				t.Errorf("System = %q, want empty", got.System)
			}
			want := Reusable[:pos] + tt.want + Reusable[pos+len(Marker):]
			if got.User != want {
				t.Errorf("User mismatch:\n got %q\nwant %q", got.User, want)
			}
			if got.User[pos:pos+len(tt.want)] != tt.want {
				t.Errorf("task not at marker position")
			}
		})
	}
}

func TestComposeReusableMarkerTask(t *testing.T) {
	got := ComposeReusable(Marker)
	if n := strings.Count(got.User, Marker); n != 1 {
		t.Errorf("result has %d markers, want exactly the task's one", n)
	}
	if strings.Index(got.User, Marker) != strings.Index(Reusable, Marker) {
		t.Error("task not substituted at the marker position")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	task := "turn a changelog into release notes"
	if ComposeOptimized(task) != ComposeOptimized(task) {
		t.Error("ComposeOptimized is not deterministic")
	}
	if ComposeReusable(task) != ComposeReusable(task) {
		t.Error("ComposeReusable is not deterministic")
	}
}

func TestMessages(t *testing.T) {
	msgs := ComposeOptimized("x").Messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != llm.RoleSystem || msgs[1].Role != llm.RoleUser {
		t.Errorf("roles = %s, %s; want system, user", msgs[0].Role, msgs[1].Role)
	}

	msgs = ComposeReusable("x").Messages()
	if len(msgs) != 1 || msgs[0].Role != llm.RoleUser {
		t.Errorf("reusable messages = %+v, want one user message", msgs)
	}
}
