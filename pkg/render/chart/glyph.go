package chart

import (
	"strings"
	"unicode/utf8"
)

// actionGlyphs maps symbolic action names, as they appear in layout files,
// to display glyphs. Lookup is exact-match and case-sensitive; unknown
// names fall through and display verbatim.
var actionGlyphs = map[string]string{
	"UpArrow":        "↑",
	"DownArrow":      "↓",
	"LeftArrow":      "←",
	"RightArrow":     "→",
	"backspace":      "⌫",
	"space":          "␣",
	"enter":          "⏎",
	"tab":            "⇥",
	"delete":         "⌦",
	"esc":            "Esc",
	"PageUp":         "PgUp",
	"PageDown":       "PgDn",
	"Home":           "Home",
	"End":            "End",
	"shift":          "⇧",
	"symb":           "@#",
	"mode_toggle":    "ABC⇄123",
	"ctrl":           "Ctrl",
	"alt":            "Alt",
	"ScrollUp":       "↑↑",
	"ScrollDown":     "↓↓",
	"WordLeft":       "⇐",
	"WordRight":      "⇒",
	"PanLeft":        "⇇",
	"PanRight":       "⇉",
	"PanLeftHome":    "⇤",
	"PanRightEnd":    "⇥",
	"unicode_picker": "Uni",
	"emoji":          "\U0001f600",
	"Insert":         "Ins",
}

// Display converts a raw layout field value into a display string: empty
// stays empty, known action names become their glyph, and anything else is
// returned with trailing whitespace stripped.
func Display(val string) string {
	if val == "" {
		return ""
	}
	if g, ok := actionGlyphs[val]; ok {
		return g
	}
	return strings.TrimRight(val, " \t\n\r")
}

// FontSizeFor returns a font size adjusted for the glyph's rune count, so
// multi-character glyphs stay inside a fixed-size key cell. Cell geometry
// never changes; only the text shrinks. The step sizes and floors are
// fixed for visual parity across layouts.
func FontSizeFor(glyph string, base float64) float64 {
	switch n := utf8.RuneCountInString(glyph); {
	case n <= 1:
		return base
	case n == 2:
		return max(9, base-3)
	case n <= 4:
		return max(8, base-5)
	default:
		return max(7, base-7)
	}
}
