package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bluezoo/chordchart/pkg/errors"
	"github.com/bluezoo/chordchart/pkg/layout"
	"github.com/bluezoo/chordchart/pkg/render"
	"github.com/bluezoo/chordchart/pkg/render/chart"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string   // --config file path
	layoutsDir string   // layout XML discovery directory
	outputDir  string   // where diagrams are written
	formats    []string // output formats: svg, png, pdf
	pngScale   float64  // raster scale for PNG output
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true}

// newGenerateCmd creates the generate command for rendering chord
// reference diagrams.
//
// With no arguments, every *.xml file in the layouts directory is
// rendered. Arguments name individual layout files, resolved against the
// layouts directory unless absolute; a missing file is a warning, not a
// failure.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [layout.xml ...]",
		Short: "Render chord reference diagrams from layout files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			applyConfig(&opts, cfg, cmd)
			if formatsStr != "" {
				opts.formats = strings.Split(formatsStr, ",")
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default chordchart.toml if present)")
	cmd.Flags().StringVar(&opts.layoutsDir, "layouts-dir", "", "directory containing layout XML files")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory for diagrams")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", 0, "PNG scale factor")

	return cmd
}

// applyConfig fills unset flags from the config file.
func applyConfig(opts *generateOpts, cfg Config, cmd *cobra.Command) {
	if opts.layoutsDir == "" {
		opts.layoutsDir = cfg.LayoutsDir
	}
	if opts.outputDir == "" {
		opts.outputDir = cfg.OutputDir
	}
	opts.formats = cfg.Formats
	if !cmd.Flags().Changed("png-scale") {
		opts.pngScale = cfg.PNGScale
	}
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// resolveInputs turns command arguments into layout file paths. With no
// arguments it discovers every .xml file in the layouts directory, sorted
// for stable processing order. Named files that do not exist are skipped
// with a warning.
func resolveInputs(ctx context.Context, args []string, layoutsDir string) ([]string, error) {
	logger := loggerFromContext(ctx)

	if len(args) == 0 {
		dirEntries, err := os.ReadDir(layoutsDir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layouts directory %s", layoutsDir)
		}
		var files []string
		for _, e := range dirEntries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".xml") {
				files = append(files, filepath.Join(layoutsDir, e.Name()))
			}
		}
		sort.Strings(files)
		return files, nil
	}

	var files []string
	for _, arg := range args {
		path := arg
		if !filepath.IsAbs(arg) {
			path = filepath.Join(layoutsDir, arg)
		}
		if _, err := os.Stat(path); err != nil {
			logger.Warnf("%s not found, skipping", path)
			printWarning("%s not found, skipping", path)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// variantLabel derives the diagram variant label from a layout filename.
func variantLabel(filename string) string {
	if strings.Contains(filename, "-standard") {
		return "Standard"
	}
	return "Optimized"
}

// outputName derives the output filename for a layout file and format.
func outputName(layoutFile, format string) string {
	base := strings.TrimSuffix(filepath.Base(layoutFile), filepath.Ext(layoutFile))
	return base + "." + format
}

// runGenerate renders every resolved layout file to the requested formats.
// A parse failure aborts that file (malformed input is fatal per file);
// other files still render.
func runGenerate(ctx context.Context, args []string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	files, err := resolveInputs(ctx, args, opts.layoutsDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("no layout files to render")
		return nil
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return err
	}

	prog := newProgress(logger)
	var failed int
	for _, path := range files {
		if err := generateOne(ctx, path, opts); err != nil {
			logger.Errorf("%s: %v", path, err)
			printError("%s: %s", filepath.Base(path), errors.UserMessage(err))
			failed++
		}
	}

	prog.done(fmt.Sprintf("Generated %d diagram(s) in %s", len(files)-failed, opts.outputDir))
	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "%d layout(s) failed", failed)
	}
	return nil
}

// generateOne renders a single layout file to every requested format.
func generateOne(ctx context.Context, path string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	lay, err := layout.ParseFile(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d chord entries", path, lay.Len())

	variant := variantLabel(filepath.Base(path))
	svg := chart.Render(lay, chart.WithVariant(variant))

	for _, format := range opts.formats {
		data := svg
		switch format {
		case "svg":
		case "png":
			if data, err = render.ToPNG(ctx, svg, opts.pngScale); err != nil {
				return err
			}
		case "pdf":
			if data, err = render.ToPDF(ctx, svg); err != nil {
				return err
			}
		}

		outPath := filepath.Join(opts.outputDir, outputName(path, format))
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", outPath, len(data))
		printSuccess("%s", outPath)
	}
	return nil
}
