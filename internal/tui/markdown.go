package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. WithAutoStyle can block on
	// terminal background queries, so styles are picked explicitly.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func resetMarkdownRenderers() {
	mdRendererMu.Lock()
	mdRenderers = map[string]*glamour.TermRenderer{}
	mdRendererMu.Unlock()
}

// renderMarkdownCompact renders md without block margins, for dense card
// bodies.
func renderMarkdownCompact(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	styleName := markdownStyle()
	key := styleName + ":compact:" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		cfg := markdownStyleConfig(styleName)
		zero := uint(0)
		cfg.Document.Margin = &zero
		cfg.Paragraph.Margin = &zero
		cfg.BlockQuote.Margin = &zero
		cfg.List.Margin = &zero
		cfg.Heading.Margin = &zero
		cfg.Code.Margin = &zero
		cfg.CodeBlock.Margin = &zero

		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// firstMarkdownLine returns the first rendered line that has visible text.
func firstMarkdownLine(md string, width int) string {
	for _, ln := range strings.Split(renderMarkdownCompact(md, width), "\n") {
		if strings.TrimSpace(xansi.Strip(ln)) != "" {
			return ln
		}
	}
	return ""
}

func markdownStyle() string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return styles.NoTTYStyle
	}
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	switch styleName {
	case styles.NoTTYStyle:
		return styles.NoTTYStyleConfig
	case styles.LightStyle:
		cfg := styles.LightStyleConfig
		applyDocketMarkdownPalette(&cfg, false)
		return cfg
	default:
		cfg := styles.DarkStyleConfig
		applyDocketMarkdownPalette(&cfg, true)
		return cfg
	}
}

var (
	mdTextColor   = ac("235", "252")
	mdAccentColor = ac("27", "62")
)

func applyDocketMarkdownPalette(cfg *ansi.StyleConfig, dark bool) {
	text := mdColor(mdTextColor, dark)
	cfg.Text.Color = text
	cfg.Heading.Color = text
	cfg.Code.Color = text
	cfg.CodeBlock.Color = text

	link := mdColor(mdAccentColor, dark)
	cfg.Link.Color = link
	cfg.LinkText.Color = link

	// Emphasis inherits the base text colour.
	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	cfg.BlockQuote.Faint = mdBoolPtr(false)
}

func mdColor(c lipgloss.AdaptiveColor, dark bool) *string {
	if dark {
		return mdStrPtr(c.Dark)
	}
	return mdStrPtr(c.Light)
}

func mdStrPtr(s string) *string { return &s }
func mdBoolPtr(b bool) *bool    { return &b }
