package tui

import (
	"strings"

	"docket-cli/internal/view"

	"github.com/charmbracelet/lipgloss"
)

const overlayTitle = "New entry"

// overlaySurfaces carries the live widget renderings for the overlay's
// inputs, keyed by node id, plus the id of the focused control.
type overlaySurfaces struct {
	fields map[string]string
	focus  string
}

func modalBoxWidth(width int) int {
	w := clamp(width-8, 30, 72)
	if width > 0 && w > width {
		w = width
	}
	return w
}

// modalBodyWidth is the text width inside the modal border and padding.
func modalBodyWidth(width int) int {
	w := modalBoxWidth(width) - 6
	if w < 1 {
		w = 1
	}
	return w
}

func renderModalBox(width int, title, closeLabel, content string) string {
	boxW := modalBoxWidth(width)
	innerW := boxW - 2

	left := lipgloss.NewStyle().Bold(true).Render(title)
	right := ""
	if closeLabel != "" {
		right = glyphClose() + " " + closeLabel
	}
	gap := innerW - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.NewStyle().
		Width(innerW).
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorModalHeader).
		Render(left + strings.Repeat(" ", gap) + right)

	body := lipgloss.NewStyle().
		Width(innerW).
		Padding(1, 2).
		Foreground(colorSurfaceFg).
		Render(content)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Render(header + "\n" + body)
}

func renderButton(label string, focused bool) string {
	// No borders: nested borders inside the modal leave background artifacts
	// on some terminals.
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if focused {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st.Render(label)
}

// renderOverlay draws an overlay node as a modal. Field values come from s;
// an empty value shows the node's placeholder.
func renderOverlay(n view.Node, width int, s overlaySurfaces) string {
	bodyW := modalBodyWidth(width)
	labelSt := styleMuted()
	focusLabelSt := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	var (
		rows       []string
		buttons    []string
		closeLabel string
	)
	for _, c := range n.Children {
		focused := c.ID != "" && c.ID == s.focus
		switch c.Kind {
		case view.KindInput, view.KindTextArea:
			label := labelSt.Render(c.Placeholder)
			if focused {
				label = focusLabelSt.Render(c.Placeholder)
			}
			val := s.fields[c.ID]
			if strings.TrimSpace(val) == "" {
				val = lipgloss.NewStyle().
					Width(bodyW).
					Background(colorInputBg).
					Render(labelSt.Render(c.Placeholder))
			}
			rows = append(rows, label, val, "")
		case view.KindButton:
			if c.Text == "" {
				// Icon-only control; it lives in the header.
				closeLabel = c.Label
				if focused {
					closeLabel = focusLabelSt.Render(c.Label)
				}
				continue
			}
			buttons = append(buttons, renderButton(c.Text, focused))
		}
	}
	if len(buttons) > 0 {
		sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
		rows = append(rows, strings.Join(buttons, sep), "")
	}
	rows = append(rows, styleMuted().Width(bodyW).Render("tab: focus   enter: select   ctrl+s: save   esc: cancel"))
	return renderModalBox(width, overlayTitle, closeLabel, strings.Join(rows, "\n"))
}

func cardStyle(selected bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)
	if selected {
		st = st.BorderForeground(colorAccent)
	}
	return st
}

// renderCard draws a card node in two inner lines: the title and the first
// line of the body.
func renderCard(card view.Node, width int, selected bool) string {
	st := cardStyle(selected)
	innerW := width - st.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	title, _ := card.Child(view.KindTitle)
	name := strings.TrimSpace(title.Text)
	if name == "" {
		name = "(untitled)"
	}

	var bodyLine string
	if body, ok := card.Child(view.KindBody); ok {
		bodyLine = firstMarkdownLine(body.Text, innerW)
	}
	if strings.TrimSpace(bodyLine) == "" {
		bodyLine = styleMuted().Render("(no details)")
	}

	lines := []string{
		fitLine(lipgloss.NewStyle().Bold(true).Render(name), innerW),
		fitLine(bodyLine, innerW),
	}
	return st.Width(innerW + st.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func renderHeading(root view.Node) string {
	h, ok := root.Child(view.KindHeading)
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(h.Text)
}

// RenderTree draws a display tree without interaction, for non-terminal
// output. A hidden overlay is omitted.
func RenderTree(root view.Node, width int) string {
	if width <= 0 {
		width = 80
	}
	parts := []string{renderHeading(root)}

	if ov, ok := root.Child(view.KindOverlay); ok && !ov.Hidden {
		parts = append(parts, renderOverlay(ov, width, overlaySurfaces{}))
	}

	list, _ := root.Child(view.KindList)
	cards := make([]string, 0, len(list.Children))
	for _, c := range list.Children {
		if c.Kind != view.KindCard {
			continue
		}
		cards = append(cards, renderCard(c, width, false))
	}
	if len(cards) == 0 {
		parts = append(parts, styleMuted().Render("No entries."))
	} else {
		parts = append(parts, strings.Join(cards, "\n"))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Configure applies appearance preferences. Theme is auto, light or dark;
// glyphPref is unicode or ascii. The colour profile is left to Lip Gloss's
// detection of stdout, so piped output stays plain.
func Configure(theme, glyphPref string) {
	applyTheme(theme)
	applyGlyphPreference(glyphPref)
}
