package tui

import (
	"strings"

	"docket-cli/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	header := renderHeading(m.tree)

	var (
		body string
		keys helpKeys
	)
	if ov, ok := m.tree.Child(view.KindOverlay); ok && !ov.Hidden {
		box := renderOverlay(ov, width, m.overlaySurfaces())
		body = lipgloss.Place(width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
		keys = m.keys.overlayHelp()
	} else {
		if len(m.entries.Items()) == 0 {
			body = styleMuted().Render("No entries.")
		} else {
			body = m.entries.View()
		}
		keys = m.keys.listHelp()
	}

	footer := m.help.View(keys)
	return strings.Join([]string{header, body, footer}, "\n\n")
}
