package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bluezoo/chordchart/pkg/errors"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "chordchart.toml"

// Config holds the optional project-level settings. Command-line flags
// override anything set here.
type Config struct {
	// LayoutsDir is where layout XML files are discovered.
	LayoutsDir string `toml:"layouts_dir"`

	// OutputDir is where generated diagrams are written.
	OutputDir string `toml:"output_dir"`

	// Formats lists the output formats to generate: svg, png, pdf.
	Formats []string `toml:"formats"`

	// PNGScale is the raster scale factor for PNG output.
	PNGScale float64 `toml:"png_scale"`
}

// defaultConfig mirrors the original project tree: layouts ship as app
// assets, diagrams land next to the docs.
func defaultConfig() Config {
	return Config{
		LayoutsDir: "app/src/main/assets/layouts",
		OutputDir:  "docs/layouts",
		Formats:    []string{"svg"},
		PNGScale:   2.0,
	}
}

// loadConfig reads the config file at path, or the default file if path is
// empty. A missing default file is fine; a missing explicit file is not.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}
