package chart

import "github.com/bluezoo/chordchart/pkg/chord"

// The tables below encode the physical chord space of the six-key
// keyboard: which chord occupies which visual slot. They are identical for
// every layout and are never derived from layout content. The left/right
// outer panel assignment in particular is ergonomic, not algorithmic, so
// it stays a hardwired list.

// slot places a chord at a (row, col) position within its section grid.
type slot struct {
	row, col int
	chord    chord.Chord
}

// labeledSlot binds a chord to a fixed caller-supplied label, used for
// sections whose chords have no natural single glyph.
type labeledSlot struct {
	chord chord.Chord
	label string
}

// innerSlots are the six same-hand 2-key chords surrounding the center
// cell in the main 5x3 grid (three per hand, adjacent and non-adjacent).
var innerSlots = []slot{
	{0, 1, chord.Of(chord.A, chord.B)},
	{0, 3, chord.Of(chord.D, chord.E)},
	{1, 0, chord.Of(chord.A, chord.C)},
	{1, 4, chord.Of(chord.D, chord.F)},
	{2, 1, chord.Of(chord.B, chord.C)},
	{2, 3, chord.Of(chord.E, chord.F)},
}

// leftOuterSlots and rightOuterSlots are the side-panel chords, six per
// panel in a 3x2 grid.
var leftOuterSlots = []slot{
	{0, 0, chord.Of(chord.A, chord.E)},
	{0, 1, chord.Of(chord.A, chord.B, chord.E, chord.F)},
	{1, 0, chord.Of(chord.A, chord.C, chord.E, chord.F)},
	{1, 1, chord.Of(chord.A, chord.C, chord.D, chord.E)},
	{2, 0, chord.Of(chord.C, chord.E)},
	{2, 1, chord.Of(chord.C, chord.D)},
}

var rightOuterSlots = []slot{
	{0, 0, chord.Of(chord.B, chord.C, chord.D, chord.E)},
	{0, 1, chord.Of(chord.B, chord.D)},
	{1, 0, chord.Of(chord.A, chord.B, chord.D, chord.F)},
	{1, 1, chord.Of(chord.B, chord.C, chord.D, chord.F)},
	{2, 0, chord.Of(chord.A, chord.F)},
	{2, 1, chord.Of(chord.B, chord.F)},
}

// directionSlots form the 2x2 navigation block below the main grid.
var directionSlots = []slot{
	{0, 0, chord.Of(chord.A, chord.D)},
	{0, 1, chord.Of(chord.A, chord.B, chord.D, chord.E)},
	{1, 0, chord.Of(chord.C, chord.F)},
	{1, 1, chord.Of(chord.B, chord.C, chord.E, chord.F)},
}

// flankChords are the two 3-key one-hand chords flanking the navigation
// block (backspace on ABC, space on DEF).
var flankChords = []chord.Chord{
	chord.Of(chord.A, chord.B, chord.C),
	chord.Of(chord.D, chord.E, chord.F),
}

// modeChords are the mode-switch chords with their fixed labels.
var modeChords = []labeledSlot{
	{chord.Of(chord.B, chord.E), "SHIFT"},
	{chord.Of(chord.A, chord.C, chord.D, chord.F), "SYMB"},
	{chord.Full, "ABC⇄123"},
}

// controlChords are the six 5-key chords bound to control keys.
var controlChords = []labeledSlot{
	{chord.Of(chord.A, chord.B, chord.C, chord.D, chord.E), "Esc"},
	{chord.Of(chord.A, chord.B, chord.C, chord.D, chord.F), "Ctrl"},
	{chord.Of(chord.A, chord.B, chord.C, chord.E, chord.F), "Alt"},
	{chord.Of(chord.A, chord.B, chord.D, chord.E, chord.F), "⏎ Enter"},
	{chord.Of(chord.A, chord.C, chord.D, chord.E, chord.F), "⇥ Tab"},
	{chord.Of(chord.B, chord.C, chord.D, chord.E, chord.F), "⌦ Del"},
}
