package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const (
	inputHeight  = 5
	outputHeight = 12
	maxWidth     = 90
)

type focusArea int

const (
	focusInput focusArea = iota
	focusOutput
)

type state struct {
	// Input
	input textarea.Model
	focus focusArea

	// Shown instead of generating when the task is blank
	warning string

	// Generation
	generating bool
	spinner    spinner.Model

	// Result
	output    viewport.Model
	result    string
	hasResult bool
	notice    string

	// Set when generation fails; rendered by the error view
	err error

	help help.Model
}

func newState() *state {
	input := textarea.New()
	input.Placeholder = "e.g., Write a professional LinkedIn post from a given topic"
	input.ShowLineNumbers = false
	input.CharLimit = 2000
	input.SetHeight(inputHeight)
	input.SetWidth(60)
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	output := viewport.New(60, outputHeight)

	return &state{
		input:   input,
		spinner: sp,
		output:  output,
		help:    help.New(),
	}
}
