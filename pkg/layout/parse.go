package layout

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/bluezoo/chordchart/pkg/chord"
	"github.com/bluezoo/chordchart/pkg/errors"
)

// xmlLayout mirrors the layout file schema.
type xmlLayout struct {
	XMLName xml.Name   `xml:"layout"`
	ID      string     `xml:"id,attr"`
	Name    string     `xml:"name,attr"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Chord       int    `xml:"chord,attr"`
	Letter      string `xml:"abc,attr"`
	LetterShift string `xml:"abc_shift,attr"`
	Digit       string `xml:"num,attr"`
	DigitShift  string `xml:"num_shift,attr"`
	Symbol      string `xml:"symb,attr"`
	SymbolShift string `xml:"symb_shift,attr"`
}

// Parse reads a layout definition from r.
//
// Structural XML errors and out-of-range or duplicate chord values are
// fatal: the caller gets a structured error rather than a half-built
// layout. Missing entries are fine (they render as blank cells).
func Parse(r io.Reader) (*Layout, error) {
	var doc xmlLayout
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "malformed layout XML")
	}

	l := &Layout{ID: doc.ID, Name: doc.Name}
	for _, e := range doc.Entries {
		c := chord.Chord(e.Chord)
		if e.Chord < 1 || e.Chord > 63 {
			return nil, errors.New(errors.ErrCodeInvalidChord,
				"chord %d out of range 1..63", e.Chord)
		}
		if l.entries[c] != nil {
			return nil, errors.New(errors.ErrCodeInvalidLayout,
				"duplicate entry for chord %s", c.Label())
		}
		l.entries[c] = &Entry{
			Letter:      e.Letter,
			LetterShift: e.LetterShift,
			Digit:       e.Digit,
			DigitShift:  e.DigitShift,
			Symbol:      e.Symbol,
			SymbolShift: e.SymbolShift,
		}
	}
	return l, nil
}

// ParseFile reads a layout definition from the file at path.
func ParseFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
