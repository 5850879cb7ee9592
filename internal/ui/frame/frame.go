// Package frame draws the terminal chrome around the active screen: a
// header bar with the title and status, and a footer with key help.
package frame

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trigbot/internal/layout"
	"github.com/abhisek/trigbot/internal/ui/theme"
)

const (
	HeaderHeight = 3
	FooterHeight = 3
)

var (
	// MinWidth and MinHeight leave room for the smallest terminal layout
	// between the header and the footer.
	MinWidth  = int(layout.TerminalMetrics().MinWidth)
	MinHeight = int(layout.TerminalMetrics().MinHeight) + HeaderHeight + FooterHeight
)

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the header bar: app name, screen title centred,
// status right-aligned.
func RenderHeader(title, status string, width int) string {
	left := theme.Title.Render("  Trig Bot")
	center := theme.Body.Render(title)
	right := status

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0)

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return theme.Bar.Width(width).Render(content)
}

// RenderFooter renders the footer with the short help of bindings.
func RenderFooter(bindings []key.Binding, width int) string {
	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	h.SetWidth(max(width-6, 0))

	return theme.Bar.Width(width).Render("  " + h.ShortHelpView(bindings))
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
