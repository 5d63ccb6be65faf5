package tui

import "testing"

func TestGlyphs_Preference(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("ASCII")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if glyphClose() != "x" || glyphEllipsis() != "~" {
		t.Fatalf("ascii glyphs not applied: %q %q", glyphClose(), glyphEllipsis())
	}

	// Unknown values are ignored (keep current).
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}

	applyGlyphPreference("unicode")
	if glyphClose() != "×" {
		t.Fatalf("expected unicode close glyph, got %q", glyphClose())
	}
}
