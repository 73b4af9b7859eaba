// Package chart renders a chord reference diagram for a six-key layout.
//
// The diagram shows every reachable chord grouped by category: the center
// single-key cell, six inner 2/3-key chord cells, two side panels of
// outer 4-key chords, a navigation block, mode-switch cells, and the row
// of 5-key control chords. Geometry is fixed per category and the overall
// canvas size is computed from the panel arrangement, so any layout file
// yields a correctly sized, non-overlapping diagram. Rendering is pure:
// the same layout and variant always produce identical bytes.
package chart

import (
	"fmt"

	"github.com/bluezoo/chordchart/pkg/layout"
)

// Option configures diagram rendering.
type Option func(*options)

type options struct {
	variant string
}

// WithVariant appends a variant label (e.g. "Standard") to the diagram
// title.
func WithVariant(v string) Option {
	return func(o *options) { o.variant = v }
}

// Main grid geometry. Columns 0 and 4 hold the non-adjacent pair cells,
// columns 1 and 3 the adjacent pairs, column 2 the center cell.
var (
	colWidths  = []float64{130, 125, 175, 125, 130}
	rowHeights = []float64{118, 140, 118}
)

// Fixed section geometry. Declared as floating constants so that constant
// arithmetic (half-widths, gaps) never truncates.
const (
	outerCellW  = 97.0
	outerCellH  = 118.0
	outerGap    = 16.0
	titleHeight = 68.0
	mainPad     = 14.0

	dirCellW = 82.0
	dirCellH = 95.0
	dirGap   = 5.0

	modeCellW = 95.0
	modeGap   = 8.0

	ctrlCellW = 95.0
	ctrlGap   = 8.0
)

// Render generates the complete SVG chord reference diagram for a layout.
func Render(lay *layout.Layout, opts ...Option) []byte {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var c Canvas
	r := &renderer{c: &c, lay: lay}

	// Grid anchor offsets.
	mainW, colX := anchors(colWidths)
	mainH, rowY := anchors(rowHeights)

	const outerPanelW = 2*outerCellW + 8

	mainBoxX := outerPanelW + outerGap + 16
	mainBoxY := float64(titleHeight)

	outerLeftX := 8.0
	outerRightX := mainBoxX + mainW + 2*mainPad + outerGap

	belowY := mainBoxY + mainH + 2*mainPad + 28

	// Control row sits below the navigation/mode section.
	dirBlockH := 2*dirCellH + dirGap
	ctrlRowY := belowY + dirBlockH + 24

	totalW := int(outerRightX + outerPanelW + 12)
	totalH := int(ctrlRowY + dirCellH + 20)

	// Title
	title := lay.Title()
	if o.variant != "" {
		title += fmt.Sprintf(" (%s)", o.variant)
	}
	c.Text(float64(totalW)/2, 30, title, TextStyle{Size: 22, Fill: "#222", Weight: "bold"})

	// Main box outline
	c.Rect(mainBoxX-mainPad, mainBoxY-mainPad, mainW+2*mainPad, mainH+2*mainPad,
		RectStyle{Fill: "white", Stroke: "#999", StrokeWidth: 2, Radius: 16})

	// Center cell
	c.Comment("Center: single keys")
	r.centerCell(mainBoxX+colX[2]+colWidths[2]/2, mainBoxY+rowY[1]+rowHeights[1]/2)

	// Inner chord cells
	for _, s := range innerSlots {
		icx := mainBoxX + colX[s.col] + colWidths[s.col]/2
		icy := mainBoxY + rowY[s.row] + rowHeights[s.row]/2
		c.Comment("Inner chord: " + s.chord.Label())
		r.innerCell(icx, icy, s.chord)
	}

	// Outer chord panels
	outerVGap := (mainH + 2*mainPad - 3*outerCellH) / 2
	for _, s := range leftOuterSlots {
		ocx := outerLeftX + float64(s.col)*(outerCellW+8) + outerCellW/2
		ocy := mainBoxY - mainPad + float64(s.row)*(outerCellH+outerVGap) + outerCellH/2
		c.Comment("Left outer: " + s.chord.Label())
		r.outerCell(ocx, ocy, s.chord, outerCellW-2, outerCellH-2)
	}
	for _, s := range rightOuterSlots {
		ocx := outerRightX + float64(s.col)*(outerCellW+8) + outerCellW/2
		ocy := mainBoxY - mainPad + float64(s.row)*(outerCellH+outerVGap) + outerCellH/2
		c.Comment("Right outer: " + s.chord.Label())
		r.outerCell(ocx, ocy, s.chord, outerCellW-2, outerCellH-2)
	}

	// Navigation block: 2x2 direction cells with one flank cell per side
	c.Comment("Directions section")
	dirBlockW := 2*dirCellW + dirGap
	dirCenterX := mainBoxX + mainW/2 + mainPad
	dirOX := dirCenterX - dirBlockW/2

	for _, s := range directionSlots {
		dcx := dirOX + float64(s.col)*(dirCellW+dirGap) + dirCellW/2
		dcy := belowY + float64(s.row)*(dirCellH+dirGap) + dirCellH/2
		r.directionCell(dcx, dcy, s.chord, dirCellW, dirCellH)
	}

	dirMidY := belowY + dirBlockH/2
	flankLeftX := dirOX - dirCellW/2 - 12
	flankRightX := dirOX + dirBlockW + dirCellW/2 + 12
	r.directionCell(flankLeftX, dirMidY, flankChords[0], dirCellW, dirCellH)
	r.directionCell(flankRightX, dirMidY, flankChords[1], dirCellW, dirCellH)

	// Mode switches
	c.Comment("Mode switches")
	modeStartX := flankRightX + dirCellW/2 + 28
	for i, m := range modeChords {
		mcx := modeStartX + float64(i)*(modeCellW+modeGap) + modeCellW/2
		r.modeCell(mcx, dirMidY, m.chord, m.label, modeCellW, dirCellH)
	}

	// Section labels
	navCenterX := (flankLeftX + flankRightX) / 2
	c.Text(navCenterX, belowY-10, "Navigation & Actions", TextStyle{Size: 10, Fill: "#aaa"})
	c.Text(modeStartX+(3*modeCellW+2*modeGap)/2, belowY-10, "Mode Switches",
		TextStyle{Size: 10, Fill: "#aaa"})

	// 5-key control chords
	c.Comment("5-key control chords")
	ctrlTotalW := float64(len(controlChords))*ctrlCellW + float64(len(controlChords)-1)*ctrlGap
	ctrlStartX := mainBoxX + mainW/2 + mainPad - ctrlTotalW/2

	c.Text(ctrlStartX+ctrlTotalW/2, ctrlRowY-8, "5-Key Control Chords",
		TextStyle{Size: 10, Fill: "#aaa"})

	for i, ctl := range controlChords {
		ccx := ctrlStartX + float64(i)*(ctrlCellW+ctrlGap) + ctrlCellW/2
		ccy := ctrlRowY + dirCellH/2
		r.controlCell(ccx, ccy, ctl.chord, ctl.label, ctrlCellW, dirCellH)
	}

	return c.Build(totalW, totalH)
}

// anchors returns the total extent of the spans plus the running offset of
// each span's start.
func anchors(spans []float64) (total float64, offsets []float64) {
	offsets = make([]float64, len(spans))
	for i, w := range spans {
		offsets[i] = total
		total += w
	}
	return total, offsets
}
