package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trigbot/internal/ui/theme"
)

// ScoreBar shows how many answered rounds were correct, as a count and a
// small bar with one cell per recent round.
type ScoreBar struct {
	Correct  int
	Answered int
	Width    int
}

// NewScoreBar creates a score bar at most width cells wide.
func NewScoreBar(correct, answered, width int) ScoreBar {
	return ScoreBar{Correct: correct, Answered: answered, Width: width}
}

// View renders the score bar. Nothing is shown before the first answer.
func (s ScoreBar) View() string {
	if s.Answered == 0 {
		return ""
	}

	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d/%d", s.Correct, s.Answered))

	barWidth := s.Width - lipgloss.Width(label) - 1
	if barWidth < 4 {
		return label
	}

	frac := float64(s.Correct) / float64(s.Answered)
	filled := min(max(int(float64(barWidth)*frac+0.5), 0), barWidth)

	return theme.ProgressFilled.Render(strings.Repeat("■", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("■", barWidth-filled)) +
		" " + label
}
