// Package layout models GKOS layout definitions and loads them from XML.
//
// A layout binds chords (1..63) to output values in three mode layers
// (letters, digits, symbols), each with a shifted variant. Layout files are
// small XML documents:
//
//	<layout id="en" name="English">
//	  <entry chord="1" abc="a" num="1"/>
//	  <entry chord="3" abc="t" abc_shift="T" symb="+"/>
//	  ...
//	</layout>
//
// Not every chord needs an entry; absent chords simply produce nothing.
// The parsed Layout is read-only: nothing in this module mutates it after
// Parse returns.
package layout

import "github.com/bluezoo/chordchart/pkg/chord"

// Entry holds the output values bound to a single chord. Any field may be
// empty, meaning the chord produces nothing in that mode. Letter, Digit and
// Symbol may hold either literal text or a symbolic action name such as
// "backspace" (resolved to a glyph at render time).
type Entry struct {
	Letter      string
	LetterShift string
	Digit       string
	DigitShift  string
	Symbol      string
	SymbolShift string
}

// Layout is an identifier, a display name, and the chord table.
type Layout struct {
	ID   string
	Name string

	// entries is indexed by chord value; slot 0 is unused.
	entries [64]*Entry
}

// Entry returns the entry bound to the chord, if any.
func (l *Layout) Entry(c chord.Chord) (Entry, bool) {
	if !c.Valid() || l.entries[c] == nil {
		return Entry{}, false
	}
	return *l.entries[c], true
}

// Title returns the layout's display name, falling back to its ID.
func (l *Layout) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Len returns the number of chords with an entry.
func (l *Layout) Len() int {
	n := 0
	for _, e := range l.entries {
		if e != nil {
			n++
		}
	}
	return n
}
