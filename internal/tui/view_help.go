package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptgen/internal/config"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  Ctrl+S         Generate a reusable prompt",
		"  Tab            Switch between task and output",
		"  Up/Down/PgUp   Scroll the output (when focused)",
		"  Ctrl+Y         Copy the output to the clipboard",
		"  F1 / Esc       Back to the form",
		"  Ctrl+C         Quit",
	}

	shortcutsBox := styleBox.
		Width(56).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Current config
	if a.config != nil {
		providerName := a.config.Provider
		if p := config.GetProvider(a.config.Provider); p != nil {
			providerName = p.Name
		}
		configLines := []string{
			fmt.Sprintf("  Provider: %s", providerName),
			fmt.Sprintf("  API Key:  %s", a.config.MaskedAPIKey()),
		}
		if a.config.BaseURL != "" {
			configLines = append(configLines, fmt.Sprintf("  Base URL: %s", a.config.BaseURL))
		}

		configTitle := styleSubtitle.Render("Configuration")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configTitle))
		b.WriteString("\n\n")

		configBox := styleBox.
			Width(56).
			Render(strings.Join(configLines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
		b.WriteString("\n\n")
	}

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
