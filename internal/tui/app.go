package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptgen/internal/config"
)

const emptyTaskWarning = "Please enter a task before generating the prompt."

// Generator produces a reusable prompt; *generator.Reusable satisfies it.
type Generator interface {
	Generate(ctx context.Context, task string) (string, error)
}

type view int

const (
	viewForm view = iota
	viewError
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool

	generator Generator
	config    *config.Config
	logger    *slog.Logger

	// swapped in tests
	copyToClipboard func(string) error
}

func NewApp(gen Generator, cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		view:            viewForm,
		state:           newState(),
		generator:       gen,
		config:          cfg,
		logger:          logger,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textarea.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case spinner.TickMsg:
		if !a.state.generating {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case generatedMsg:
		a.state.generating = false
		a.state.result = msg.text
		a.state.hasResult = true
		a.state.notice = ""
		a.state.output.SetContent(msg.text)
		a.state.output.GotoTop()
		return a, nil

	case generateFailedMsg:
		// Not handled by the form: the failure goes straight to the error view.
		a.state.generating = false
		a.state.err = msg.error
		a.view = viewError
		return a, nil
	}

	if a.view != viewForm {
		return a, nil
	}

	// Update the focused widget
	if a.state.focus == focusOutput {
		var cmd tea.Cmd
		a.state.output, cmd = a.state.output.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey reports whether the key was consumed; unconsumed keys go to the
// focused widget.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewError:
		if key.Matches(msg, keys.Back) {
			a.state.err = nil
			a.view = viewForm
		}
		return nil, true
	case viewHelp:
		if key.Matches(msg, keys.Back, keys.Help) {
			a.view = viewForm
		}
		return nil, true
	}

	// One generation at a time
	if a.state.generating {
		return nil, true
	}

	switch {
	case key.Matches(msg, keys.Generate):
		return a.submit(), true

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil, true

	case key.Matches(msg, keys.Copy):
		a.copyResult()
		return nil, true

	case key.Matches(msg, keys.Focus):
		return a.toggleFocus(), true
	}

	return nil, false
}

// submit starts generation for the current task, or sets the empty-task
// warning without touching the network.
func (a *App) submit() tea.Cmd {
	task := a.state.input.Value()
	if strings.TrimSpace(task) == "" {
		a.state.warning = emptyTaskWarning
		return nil
	}

	a.state.warning = ""
	a.state.notice = ""
	a.state.generating = true
	return tea.Batch(a.state.spinner.Tick, a.generate(task))
}

func (a *App) generate(task string) tea.Cmd {
	return func() tea.Msg {
		text, err := a.generator.Generate(context.Background(), task)
		if err != nil {
			return generateFailedMsg{err}
		}
		return generatedMsg{text}
	}
}

func (a *App) copyResult() {
	if !a.state.hasResult {
		return
	}
	if err := a.copyToClipboard(a.state.result); err != nil {
		a.logger.Warn("copy to clipboard failed", "err", err)
		a.state.notice = "Could not copy: " + err.Error()
		return
	}
	a.state.notice = "Copied to clipboard"
}

func (a *App) toggleFocus() tea.Cmd {
	if a.state.focus == focusInput && a.state.hasResult {
		a.state.focus = focusOutput
		a.state.input.Blur()
		return nil
	}
	a.state.focus = focusInput
	return a.state.input.Focus()
}

func (a *App) resize() {
	w := a.contentWidth()
	// Box border and padding take four columns.
	a.state.input.SetWidth(w - 4)
	a.state.output.Width = w - 4
	a.state.help.Width = w
}

type generatedMsg struct{ text string }
type generateFailedMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
