// Package render provides output rendering for chord reference diagrams.
//
// # Overview
//
// The [chart] subpackage generates the SVG chord reference diagram for a
// layout: the center single-key cell, inner 2/3-key chord cells, outer
// 4-key panels, navigation and mode-switch sections, and the 5-key control
// row.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := chart.Render(layout, chart.WithVariant("Standard"))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [chart]: github.com/bluezoo/chordchart/pkg/render/chart
package render
