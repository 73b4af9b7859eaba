package chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// RectStyle controls the appearance of a rectangle primitive.
type RectStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Radius      float64 // corner radius
}

// TextStyle controls the appearance of a text primitive. Zero values mean
// black fill, middle anchor, normal weight. Text is always vertically
// centered on its y coordinate.
type TextStyle struct {
	Size   float64
	Fill   string
	Anchor string
	Weight string
}

// Canvas is an append-only SVG drawing surface. Primitives are accumulated
// in draw order (later primitives stack on top of earlier ones) and
// serialized exactly once by Build. Output is fully determined by the
// sequence of calls, so identical input reproduces identical bytes.
type Canvas struct {
	parts []string
}

func (c *Canvas) add(s string) { c.parts = append(c.parts, s) }

// Rect appends a rounded rectangle.
func (c *Canvas) Rect(x, y, w, h float64, s RectStyle) {
	c.add(fmt.Sprintf(
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%g" rx="%g"/>`,
		x, y, w, h, s.Fill, s.Stroke, s.StrokeWidth, s.Radius))
}

// Text appends a text primitive centered vertically on y.
func (c *Canvas) Text(x, y float64, txt string, s TextStyle) {
	if s.Fill == "" {
		s.Fill = "black"
	}
	if s.Anchor == "" {
		s.Anchor = "middle"
	}
	if s.Weight == "" {
		s.Weight = "normal"
	}
	c.add(fmt.Sprintf(
		`<text x="%.1f" y="%.1f" font-size="%g" fill="%s" text-anchor="%s" font-weight="%s" dominant-baseline="central">%s</text>`,
		x, y, s.Size, s.Fill, s.Anchor, s.Weight, escapeXML(txt)))
}

// OpenGroup appends a group element, translated when tx or ty is nonzero.
// Every OpenGroup must be balanced by a CloseGroup.
func (c *Canvas) OpenGroup(tx, ty float64) {
	if tx != 0 || ty != 0 {
		c.add(fmt.Sprintf(`<g transform="translate(%.1f,%.1f)">`, tx, ty))
		return
	}
	c.add("<g>")
}

// CloseGroup closes the most recently opened group.
func (c *Canvas) CloseGroup() { c.add("</g>") }

// Comment appends an XML comment, useful for marking diagram sections.
func (c *Canvas) Comment(s string) { c.add(fmt.Sprintf("<!-- %s -->", s)) }

// Build serializes the canvas as a complete SVG document with the given
// pixel dimensions.
func (c *Canvas) Build(w, h int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		w, h, w, h)
	buf.WriteString("<defs><style>\n")
	buf.WriteString(`  text { font-family: "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; }` + "\n")
	buf.WriteString("</style></defs>\n")
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="white"/>`+"\n", w, h)
	buf.WriteString(strings.Join(c.parts, "\n"))
	buf.WriteString("\n</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
