package board

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/game"
	"github.com/nmoreno/quizrush/internal/ui/theme"
)

// timerWarnAt is the remaining-seconds threshold below which the
// countdown turns red.
const timerWarnAt = 10

func (s *BoardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	switch s.machine.State() {
	case game.StateLoading:
		if s.machine.Question() == nil {
			return renderLoading(width)
		}
		// Submission in flight: keep the board up, options locked.
		return s.renderBoard(width)
	case game.StatePlaying, game.StateFeedback:
		return s.renderBoard(width)
	}
	// Terminal states replace the screen; render nothing in the gap.
	return ""
}

func (s *BoardScreen) renderBoard(width int) string {
	q := s.machine.Question()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	statement := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Statement)
	b.WriteString(statement)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	b.WriteString("\n")

	if line := s.renderVerdictLine(width); line != "" {
		b.WriteString(line)
	} else if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
	}

	return b.String()
}

// renderStatusLine shows score, lives, progress and the countdown.
func (s *BoardScreen) renderStatusLine(width int) string {
	m := s.machine

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Score %d", m.Score()))

	hearts := strings.Repeat("♥", m.Lives()) + strings.Repeat("♡", max(game.StartingLives-m.Lives(), 0))
	livesStr := lipgloss.NewStyle().Foreground(theme.Error).Render(hearts)

	timerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if m.State() == game.StatePlaying && m.TimeLeft() <= timerWarnAt {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d", m.Answered()+1)) +
		"   " + livesStr + "   " +
		timerStyle.Render(fmt.Sprintf("0:%02d", m.TimeLeft()))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderVerdictLine shows the feedback verdict while it is on screen.
func (s *BoardScreen) renderVerdictLine(width int) string {
	if s.machine.State() != game.StateFeedback {
		return ""
	}
	fb := s.machine.Feedback()
	if fb == nil {
		return ""
	}

	var verdict string
	if fb.IsCorrect {
		verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
	} else {
		verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Wrong!")
	}

	line := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(verdict)
	if fb.Explanation != "" {
		line += "\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fb.Explanation)
	}
	return line
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Contacting the quizmaster...")
}

func renderError(width int, msg string) string {
	body := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong") +
		"\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(msg) +
		"\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Press any key to go back")
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + body)
}
