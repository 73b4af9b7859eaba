package chart

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/bluezoo/chordchart/pkg/layout"
)

// fullLayout builds a layout with an entry for every chord 1..63 so every
// renderer path (badges, extensions, annotations) is exercised.
func fullLayout(t *testing.T) *layout.Layout {
	t.Helper()
	var sb strings.Builder
	sb.WriteString(`<layout id="full" name="Full">`)
	for c := 1; c <= 63; c++ {
		fmt.Fprintf(&sb, `<entry chord="%d" abc="x%d" num="%d" symb="s%d"/>`, c, c%10, c%10, c%10)
	}
	sb.WriteString(`</layout>`)
	return mustLayout(t, sb.String())
}

func TestRenderIdempotent(t *testing.T) {
	lay := fullLayout(t)
	a := Render(lay, WithVariant("Standard"))
	b := Render(lay, WithVariant("Standard"))
	if !bytes.Equal(a, b) {
		t.Error("two renders of identical input differ")
	}
}

func TestRenderEmptyLayout(t *testing.T) {
	lay := mustLayout(t, `<layout id="empty" name="Empty"></layout>`)
	out := Render(lay)

	if !bytes.Contains(out, []byte("Empty")) {
		t.Error("title missing")
	}
	// Structural text still renders: section labels and fixed cell labels.
	for _, frag := range []string{"Navigation &amp; Actions", "Mode Switches",
		"5-Key Control Chords", "SHIFT", "SYMB", "Esc", "Ctrl"} {
		if !bytes.Contains(out, []byte(frag)) {
			t.Errorf("missing structural label %q", frag)
		}
	}
}

func TestRenderTitleVariant(t *testing.T) {
	lay := mustLayout(t, `<layout id="en" name="English"></layout>`)
	out := Render(lay, WithVariant("Optimized"))
	if !bytes.Contains(out, []byte("English (Optimized)")) {
		t.Error("variant label missing from title")
	}
	out = Render(lay)
	if bytes.Contains(out, []byte("English (")) {
		t.Error("variant suffix should be absent without WithVariant")
	}
}

// A 2-key same-hand chord with only a letter value renders an inner cell:
// pressed keys, a badge with the character, and no annotations.
func TestRenderInnerPairScenario(t *testing.T) {
	lay := mustLayout(t, `<layout id="t" name="T"><entry chord="3" abc="t"/></layout>`)
	out := string(Render(lay))

	section := between(t, out, "<!-- Inner chord: AB -->", "<!--")
	if !strings.Contains(section, ">t</text>") {
		t.Error("badge character missing from AB cell")
	}
	if got := strings.Count(section, `fill="#222"`); got != 2 {
		t.Errorf("want 2 pressed keys in AB cell, got %d", got)
	}
	if strings.Contains(section, digitFill) || strings.Contains(section, symbolFill) {
		t.Error("no annotations expected for a letter-only entry")
	}
}

// The full six-key chord always renders through the mode-switch cell with
// its fixed label, whatever its entry says.
func TestRenderFullChordScenario(t *testing.T) {
	lay := mustLayout(t, `<layout id="t" name="T"><entry chord="63" abc="zzz"/></layout>`)
	out := string(Render(lay))

	if !strings.Contains(out, ">ABC⇄123</text>") {
		t.Error("full-chord mode label missing")
	}
	if strings.Contains(out, ">zzz</text>") {
		t.Error("full-chord letter value must not render")
	}
}

// An entry holding a symbolic action name renders the mapped glyph, never
// the literal name.
func TestRenderActionGlyphScenario(t *testing.T) {
	lay := mustLayout(t, `<layout id="t" name="T"><entry chord="7" abc="backspace"/></layout>`)
	out := string(Render(lay))

	if !strings.Contains(out, ">⌫</text>") {
		t.Error("backspace glyph missing")
	}
	if strings.Contains(out, ">backspace</text>") {
		t.Error("literal action name should not render")
	}
}

var (
	rectRe    = regexp.MustCompile(`<rect x="(-?[0-9.]+)" y="(-?[0-9.]+)" width="([0-9.]+)" height="([0-9.]+)"`)
	textRe    = regexp.MustCompile(`<text x="(-?[0-9.]+)" y="(-?[0-9.]+)"`)
	viewBoxRe = regexp.MustCompile(`viewBox="0 0 ([0-9]+) ([0-9]+)"`)
)

// Every primitive must land inside the computed canvas, for a fully
// populated layout and for an empty one.
func TestRenderBounds(t *testing.T) {
	layouts := map[string]*layout.Layout{
		"full":  fullLayout(t),
		"empty": mustLayout(t, `<layout id="e" name="E"></layout>`),
	}
	for name, lay := range layouts {
		t.Run(name, func(t *testing.T) {
			out := string(Render(lay, WithVariant("Standard")))

			vb := viewBoxRe.FindStringSubmatch(out)
			if vb == nil {
				t.Fatal("no viewBox in output")
			}
			w := parseF(t, vb[1])
			h := parseF(t, vb[2])

			for _, m := range rectRe.FindAllStringSubmatch(out, -1) {
				x, y := parseF(t, m[1]), parseF(t, m[2])
				rw, rh := parseF(t, m[3]), parseF(t, m[4])
				if x < 0 || y < 0 || x+rw > w || y+rh > h {
					t.Errorf("rect (%g,%g %gx%g) outside canvas %gx%g", x, y, rw, rh, w, h)
				}
			}
			for _, m := range textRe.FindAllStringSubmatch(out, -1) {
				x, y := parseF(t, m[1]), parseF(t, m[2])
				if x < 0 || y < 0 || x > w || y > h {
					t.Errorf("text at (%g,%g) outside canvas %gx%g", x, y, w, h)
				}
			}
		})
	}
}

// All 24 fixed chord slots are drawn: 1 center + 6 inner + 12 outer +
// 6 direction + 3 mode + 6 control sections appear in draw order.
func TestRenderSectionComments(t *testing.T) {
	out := string(Render(fullLayout(t)))

	wantOrder := []string{
		"<!-- Center: single keys -->",
		"<!-- Inner chord: AB -->",
		"<!-- Inner chord: EF -->",
		"<!-- Left outer: AE -->",
		"<!-- Right outer: BF -->",
		"<!-- Directions section -->",
		"<!-- Mode switches -->",
		"<!-- 5-key control chords -->",
	}
	last := -1
	for _, c := range wantOrder {
		idx := strings.Index(out, c)
		if idx < 0 {
			t.Fatalf("missing comment %q", c)
		}
		if idx < last {
			t.Errorf("comment %q out of order", c)
		}
		last = idx
	}
}

func between(t *testing.T, s, start, end string) string {
	t.Helper()
	i := strings.Index(s, start)
	if i < 0 {
		t.Fatalf("marker %q not found", start)
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return rest
	}
	return rest[:j]
}

func parseF(t *testing.T, s string) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return f
}
