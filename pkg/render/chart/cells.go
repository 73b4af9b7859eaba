package chart

import (
	"unicode/utf8"

	"github.com/bluezoo/chordchart/pkg/chord"
	"github.com/bluezoo/chordchart/pkg/layout"
)

// Annotation colors: digit-mode values render muted gray, symbol-mode
// values render accent blue, everywhere in the diagram.
const (
	digitFill  = "#999"
	symbolFill = "#2266cc"
)

// renderer draws the per-category cells for one layout onto one canvas.
type renderer struct {
	c   *Canvas
	lay *layout.Layout
}

// values resolves the letter, digit, and symbol display strings for a
// chord. A chord with no entry resolves to three empty strings; the cell
// still renders, just without text.
func (r *renderer) values(c chord.Chord) (letter, digit, symbol string) {
	e, ok := r.lay.Entry(c)
	if !ok {
		return "", "", ""
	}
	return Display(e.Letter), Display(e.Digit), Display(e.Symbol)
}

// keyFace describes how one key in a six-key grid is drawn.
type keyFace struct {
	Char     string
	Pressed  bool
	Dimmed   bool
	FontSize float64
	TextFill string
}

// drawKey draws a single rounded-rect key with an optional centered
// character. Pressed keys are inverted; dimmed keys are muted.
func (r *renderer) drawKey(x, y, w, h float64, f keyFace) {
	var textFill string
	switch {
	case f.Pressed:
		r.c.Rect(x, y, w, h, RectStyle{Fill: "#222", Stroke: "#222", StrokeWidth: 1.5, Radius: 4})
		textFill = "white"
	case f.Dimmed:
		r.c.Rect(x, y, w, h, RectStyle{Fill: "#f0f0f0", Stroke: "#ccc", StrokeWidth: 1, Radius: 4})
		textFill = "#888"
	default:
		r.c.Rect(x, y, w, h, RectStyle{Fill: "white", Stroke: "#555", StrokeWidth: 1.5, Radius: 4})
		textFill = "black"
	}
	if f.TextFill != "" {
		textFill = f.TextFill
	}
	if f.Char != "" {
		fs := FontSizeFor(f.Char, f.FontSize)
		r.c.Text(x+w/2, y+h/2, f.Char, TextStyle{Size: fs, Fill: textFill, Weight: "bold"})
	}
}

// drawKeyboard draws the six-key grid with the given per-key faces,
// indexed in canonical key order.
func (r *renderer) drawKeyboard(ox, oy, kw, kh, gx, gy float64, faces [6]keyFace) {
	for i, k := range chord.Keys {
		x := ox + float64(k.Col())*(kw+gx)
		y := oy + float64(k.Row())*(kh+gy)
		r.drawKey(x, y, kw, kh, faces[i])
	}
}

// annotate draws the gray digit / blue symbol annotation pair. Empty
// values draw nothing.
func (r *renderer) annotate(x, yDigit, ySymbol float64, digit, symbol, anchor string, digitSize, symbolSize float64) {
	if digit != "" {
		r.c.Text(x, yDigit, digit, TextStyle{Size: digitSize, Fill: digitFill, Anchor: anchor, Weight: "bold"})
	}
	if symbol != "" {
		r.c.Text(x, ySymbol, symbol, TextStyle{Size: symbolSize, Fill: symbolFill, Anchor: anchor})
	}
}

// centerCell draws the main six-key cell: every key unpressed with its
// letter value, plus digit/symbol annotations outward of each key on its
// hand's outer edge.
func (r *renderer) centerCell(cx, cy float64) {
	const (
		kw, kh = 55.0, 42.0
		gx, gy = 26.0, 8.0
	)
	totalW := 2*kw + gx
	totalH := 3*kh + 2*gy
	ox := cx - totalW/2
	oy := cy - totalH/2

	var faces [6]keyFace
	for i, k := range chord.Keys {
		letter, _, _ := r.values(chord.Chord(k))
		faces[i] = keyFace{Char: letter, FontSize: 24}
	}
	r.drawKeyboard(ox, oy, kw, kh, gx, gy, faces)

	for _, k := range chord.Keys {
		_, digit, symbol := r.values(chord.Chord(k))
		if digit == "" && symbol == "" {
			continue
		}
		kx := ox + float64(k.Col())*(kw+gx)
		ky := oy + float64(k.Row())*(kh+gy)
		if k.Hand() == chord.Left {
			r.annotate(kx-7, ky+kh*0.30, ky+kh*0.72, digit, symbol, "end", 12, 11)
		} else {
			r.annotate(kx+kw+7, ky+kh*0.30, ky+kh*0.72, digit, symbol, "start", 12, 11)
		}
	}
}

// innerCell draws a 2-key chord cell inside the main grid: the base pair
// pressed (inverted), the base chord's character as a floating badge
// between them, and 3-key extension characters on opposite-hand keys
// where base|key has an entry. Non-adjacent pairs get the badge offset
// outward so they read differently from adjacent pairs.
func (r *renderer) innerCell(cx, cy float64, base chord.Chord) {
	const (
		kw, kh = 42.0, 30.0
		gx, gy = 14.0, 6.0
	)
	totalW := 2*kw + gx
	totalH := 3*kh + 2*gy
	ox := cx - totalW/2
	oy := cy - totalH/2

	baseChar, baseDigit, baseSymbol := r.values(base)

	// Extensions live on the hand opposite the base pair.
	var extKeys []chord.Key
	onLeft := base.OnHand(chord.Left)
	onRight := base.OnHand(chord.Right)
	if onLeft {
		extKeys = chord.Right.Keys()
	} else if onRight {
		extKeys = chord.Left.Keys()
	}

	type extValues struct{ letter, digit, symbol string }
	ext := make(map[chord.Key]extValues)
	for _, k := range extKeys {
		if _, ok := r.lay.Entry(base.With(k)); ok {
			letter, digit, symbol := r.values(base.With(k))
			ext[k] = extValues{letter, digit, symbol}
		}
	}

	var faces [6]keyFace
	for i, k := range chord.Keys {
		if base.Has(k) {
			faces[i] = keyFace{Pressed: true, FontSize: 14}
		} else if v, ok := ext[k]; ok {
			faces[i] = keyFace{Char: v.letter, FontSize: 13}
		} else {
			faces[i] = keyFace{Dimmed: true}
		}
	}
	r.drawKeyboard(ox, oy, kw, kh, gx, gy, faces)

	minRow, maxRow := base.RowSpan()

	if baseChar != "" {
		col := float64(base.Keys()[0].Col())
		lx := ox + col*(kw+gx) + kw/2
		yTop := oy + float64(minRow)*(kh+gy) + kh/2
		yBot := oy + float64(maxRow)*(kh+gy) + kh/2
		ly := (yTop + yBot) / 2

		// Non-adjacent pairs (AC, DF) would otherwise render at the same
		// badge position as adjacent ones; push the badge outward.
		if base.NonAdjacent() {
			if onLeft {
				lx -= 14
			} else {
				lx += 14
			}
		}

		fs := FontSizeFor(baseChar, 16)
		badgeW := max(kw-2, float64(utf8.RuneCountInString(baseChar))*fs*0.7+8)
		badgeH := fs + 8
		r.c.Rect(lx-badgeW/2, ly-badgeH/2, badgeW, badgeH,
			RectStyle{Fill: "#333", Stroke: "#333", StrokeWidth: 0, Radius: badgeH / 2})
		r.c.Text(lx, ly, baseChar, TextStyle{Size: fs, Fill: "white", Weight: "bold"})

		if onLeft {
			r.annotate(lx-badgeW/2-4, ly-6, ly+6, baseDigit, baseSymbol, "end", 9, 8)
		} else {
			r.annotate(lx+badgeW/2+4, ly-6, ly+6, baseDigit, baseSymbol, "start", 9, 8)
		}
	}

	for _, k := range extKeys {
		v, ok := ext[k]
		if !ok {
			continue
		}
		kx := ox + float64(k.Col())*(kw+gx)
		ky := oy + float64(k.Row())*(kh+gy)
		if k.Hand() == chord.Left {
			r.annotate(kx-4, ky+kh*0.30, ky+kh*0.72, v.digit, v.symbol, "end", 9, 8)
		} else {
			r.annotate(kx+kw+4, ky+kh*0.30, ky+kh*0.72, v.digit, v.symbol, "start", 9, 8)
		}
	}
}

// miniKeyboard draws a small glyph-free keyboard with exactly the chord's
// keys pressed and all others dimmed.
func (r *renderer) miniKeyboard(ox, oy, kw, kh, gx, gy float64, c chord.Chord) {
	var faces [6]keyFace
	for i, k := range chord.Keys {
		faces[i] = keyFace{Pressed: c.Has(k), Dimmed: !c.Has(k)}
	}
	r.drawKeyboard(ox, oy, kw, kh, gx, gy, faces)
}

// outerCell draws a 4-key chord cell in a side panel: character near the
// top, mini keyboard in the middle, annotations at the bottom.
func (r *renderer) outerCell(cx, cy float64, c chord.Chord, cellW, cellH float64) {
	char, digit, symbol := r.values(c)

	r.c.Rect(cx-cellW/2, cy-cellH/2, cellW, cellH,
		RectStyle{Fill: "#fafafa", Stroke: "#ddd", StrokeWidth: 1, Radius: 7})

	if char != "" {
		fs := FontSizeFor(char, 20)
		r.c.Text(cx, cy-cellH/2+14, char, TextStyle{Size: fs, Fill: "#222", Weight: "bold"})
	}

	const (
		mkw, mkh = 20.0, 15.0
		mgx, mgy = 5.0, 3.0
	)
	kbW := 2*mkw + mgx
	kbH := 3*mkh + 2*mgy
	r.miniKeyboard(cx-kbW/2, cy-kbH/2-2, mkw, mkh, mgx, mgy, c)

	bottom := cy + cellH/2
	r.annotate(cx, bottom-20, bottom-8, digit, symbol, "middle", 10, 9)
}

// directionCell draws a compact navigation/action chord cell.
func (r *renderer) directionCell(cx, cy float64, c chord.Chord, cellW, cellH float64) {
	char, digit, symbol := r.values(c)

	r.c.Rect(cx-cellW/2, cy-cellH/2, cellW, cellH,
		RectStyle{Fill: "#f0f4ff", Stroke: "#b0c0e0", StrokeWidth: 1, Radius: 7})

	r.compactKeyboard(cx, cy, c)

	if char != "" {
		fs := FontSizeFor(char, 16)
		r.c.Text(cx, cy-cellH/2+18, char, TextStyle{Size: fs, Fill: "#333", Weight: "bold"})
	}

	bottom := cy + cellH/2
	r.annotate(cx, bottom-18, bottom-6, digit, symbol, "middle", 10, 9)
}

// modeCell draws a mode-switch chord cell. The fixed label replaces the
// resolved character: these chords are structural and have no natural
// single glyph.
func (r *renderer) modeCell(cx, cy float64, c chord.Chord, label string, cellW, cellH float64) {
	r.labeledCell(cx, cy, c, label, cellW, cellH, "#fff8f0", "#e0c8a0")
}

// controlCell draws a 5-key control chord cell (Esc, Enter, Tab, etc.).
func (r *renderer) controlCell(cx, cy float64, c chord.Chord, label string, cellW, cellH float64) {
	r.labeledCell(cx, cy, c, label, cellW, cellH, "#f4f0ff", "#c0b0e0")
}

func (r *renderer) labeledCell(cx, cy float64, c chord.Chord, label string, cellW, cellH float64, fill, stroke string) {
	_, digit, symbol := r.values(c)

	r.c.Rect(cx-cellW/2, cy-cellH/2, cellW, cellH,
		RectStyle{Fill: fill, Stroke: stroke, StrokeWidth: 1, Radius: 7})

	r.compactKeyboard(cx, cy, c)

	r.c.Text(cx, cy-cellH/2+18, label, TextStyle{Size: 13, Fill: "#333", Weight: "bold"})

	bottom := cy + cellH/2
	r.annotate(cx, bottom-18, bottom-6, digit, symbol, "middle", 10, 9)
}

// compactKeyboard is the mini keyboard variant shared by the direction,
// mode, and control cells.
func (r *renderer) compactKeyboard(cx, cy float64, c chord.Chord) {
	const (
		mkw, mkh = 16.0, 12.0
		mgx, mgy = 4.0, 2.0
	)
	kbW := 2*mkw + mgx
	kbH := 3*mkh + 2*mgy
	r.miniKeyboard(cx-kbW/2, cy-kbH/2+6, mkw, mkh, mgx, mgy, c)
}
