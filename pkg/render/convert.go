package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ToPDF converts SVG data to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "--format", "pdf")
}

// ToPNG converts SVG data to PNG at the given scale factor using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return convert(ctx, svg, "--format", "png", "--zoom", fmt.Sprintf("%g", scale))
}

func convert(ctx context.Context, svg []byte, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("rsvg-convert: %w: %s", err, stderr.String())
		}
		return nil, fmt.Errorf("rsvg-convert: %w (is librsvg installed?)", err)
	}
	return out.Bytes(), nil
}
