package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitLine forces s onto one line exactly width columns wide (ANSI-aware),
// cutting with an ellipsis or padding with spaces.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")

	// Bound the work on pathological input before measuring it. One extra
	// column keeps the cut below in charge of the ellipsis.
	if len(s) > 8192 {
		s = xansi.Cut(s, 0, width+1)
	}

	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			s = xansi.Cut(s, 0, 1)
		} else {
			s = xansi.Cut(s, 0, width-1) + glyphEllipsis()
		}
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
