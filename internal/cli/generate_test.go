package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bluezoo/chordchart/pkg/errors"
)

func TestVariantLabel(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"en-standard.xml", "Standard"},
		{"de-standard.xml", "Standard"},
		{"en.xml", "Optimized"},
		{"standard.xml", "Optimized"},
	}
	for _, tt := range tests {
		if got := variantLabel(tt.filename); got != tt.want {
			t.Errorf("variantLabel(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		path   string
		format string
		want   string
	}{
		{"layouts/en.xml", "svg", "en.svg"},
		{"/abs/path/de-standard.xml", "png", "de-standard.png"},
		{"fi.xml", "pdf", "fi.pdf"},
	}
	for _, tt := range tests {
		if got := outputName(tt.path, tt.format); got != tt.want {
			t.Errorf("outputName(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"svg", "png", "pdf"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	err := validateFormats([]string{"svg", "gif"})
	if err == nil {
		t.Fatal("invalid format accepted")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("want INVALID_FORMAT, got %v", err)
	}
}

func TestResolveInputsDiscovery(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xml", "a.xml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<layout id=\"x\"/>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := resolveInputs(context.Background(), nil, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("want 2 xml files, got %v", files)
	}
	// Sorted for stable processing order.
	if filepath.Base(files[0]) != "a.xml" || filepath.Base(files[1]) != "b.xml" {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestResolveInputsMissingFileSkipped(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.xml"), []byte("<layout id=\"en\"/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := resolveInputs(context.Background(), []string{"en.xml", "missing.xml"}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "en.xml" {
		t.Errorf("missing file should be skipped, got %v", files)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	layoutsDir := t.TempDir()
	outDir := t.TempDir()

	doc := `<layout id="en" name="English"><entry chord="1" abc="a" num="1"/></layout>`
	if err := os.WriteFile(filepath.Join(layoutsDir, "en.xml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &generateOpts{
		layoutsDir: layoutsDir,
		outputDir:  outDir,
		formats:    []string{"svg"},
	}
	if err := runGenerate(context.Background(), nil, opts); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "en.svg"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if len(data) == 0 || string(data[:5]) != "<?xml" {
		t.Error("output does not look like an SVG document")
	}
}

func TestGenerateMalformedLayoutFails(t *testing.T) {
	layoutsDir := t.TempDir()
	outDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(layoutsDir, "bad.xml"), []byte("<layout id="), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &generateOpts{
		layoutsDir: layoutsDir,
		outputDir:  outDir,
		formats:    []string{"svg"},
	}
	if err := runGenerate(context.Background(), nil, opts); err == nil {
		t.Fatal("malformed layout should fail the run")
	}
}
