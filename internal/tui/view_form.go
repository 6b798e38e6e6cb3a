package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const intro = "Enter a task you'd like to automate using GPT (e.g. write a blog post, summarize a video).\n" +
	"This generates a reusable GPT prompt with an {input} placeholder you can use again and again."

func (a *App) renderForm() string {
	var b strings.Builder
	w := a.contentWidth()

	// Title
	title := styleTitle.Render("Reusable GPT Prompt Generator")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	introText := styleSubtitle.Width(w).Render(intro)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, introText))
	b.WriteString("\n\n")

	// Input
	label := styleLabel.Width(w).Render("Describe the task GPT should help with:")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, label))
	b.WriteString("\n")

	inputBorder := colorMuted
	if a.state.focus == focusInput {
		inputBorder = colorSecondary
	}
	inputBox := styleBox.
		Width(w).
		BorderForeground(inputBorder).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n")

	// Warning, progress, or nothing
	switch {
	case a.state.warning != "":
		warning := styleWarning.Width(w).Render("! " + a.state.warning)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, warning))
		b.WriteString("\n")
	case a.state.generating:
		progress := lipgloss.NewStyle().Width(w).Render(a.state.spinner.View() + " Generating your prompt...")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, progress))
		b.WriteString("\n")
	}

	// Result
	if a.state.hasResult {
		b.WriteString("\n")
		subheader := styleSuccess.Width(w).Render("Your Reusable GPT Prompt:")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subheader))
		b.WriteString("\n")

		outputBorder := colorPrimary
		if a.state.focus == focusOutput {
			outputBorder = colorSecondary
		}
		outputBox := styleBox.
			Width(w).
			BorderForeground(outputBorder).
			Render(a.state.output.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, outputBox))
		b.WriteString("\n")

		scroll := fmt.Sprintf("%3.f%%", a.state.output.ScrollPercent()*100)
		if a.state.notice != "" {
			scroll = a.state.notice + "  " + scroll
		}
		status := styleStatusBar.Width(w).Align(lipgloss.Right).Render(scroll)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	helpLine := a.state.help.View(keys)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, helpLine))
	b.WriteString("\n")
	caption := styleStatusBar.Render("Built with Bubble Tea and the OpenAI API.")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, caption))

	return b.String()
}

// contentWidth is the width of the boxed widgets.
func (a *App) contentWidth() int {
	w := min(maxWidth, a.width-4)
	if w < 20 {
		w = 20
	}
	return w
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
