package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/promptgen/internal/config"
	"github.com/sant0-9/promptgen/internal/generator"
)

func (a *App) renderError() string {
	var b strings.Builder
	w := min(60, a.width-4)

	// Error icon and title
	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Error message
	errMsg := "Unknown error"
	if a.state.err != nil {
		errMsg = a.state.err.Error()
	}

	errBox := styleBox.
		Width(w).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := a.suggestionsFor(errMsg); len(suggestions) > 0 {
		suggBox := styleBox.
			Width(w).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	// Actions
	status := styleStatusBar.Render("[Esc] Back  [Ctrl+C] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// suggestionsFor guesses remedies from the error text.
func (a *App) suggestionsFor(errMsg string) []string {
	var suggestions []string
	errLower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(errLower, "api key") || strings.Contains(errLower, "401") || strings.Contains(errLower, "unauthorized"):
		suggestions = append(suggestions, fmt.Sprintf("Set %s in your environment or in a .env file", config.EnvAPIKey))
		if a.config != nil {
			if p := config.GetProvider(a.config.Provider); p != nil && p.SignupURL != "" {
				suggestions = append(suggestions, "Get a key at: "+p.SignupURL)
			}
		}
	case strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429") || strings.Contains(errLower, "quota"):
		suggestions = append(suggestions, "You've hit the API rate limit or quota")
		suggestions = append(suggestions, "Wait a moment and try again")
	case strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") || strings.Contains(errLower, "timeout"):
		suggestions = append(suggestions, "Check your internet connection")
		if a.config != nil && a.config.BaseURL != "" {
			suggestions = append(suggestions, "Check base_url: "+a.config.BaseURL)
		}
	case strings.Contains(errLower, "model"):
		suggestions = append(suggestions, "Make sure your account has access to "+generator.ReusableModel)
	}

	return suggestions
}
