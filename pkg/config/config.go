package config

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned by Validate for out-of-range values
var ErrInvalidConfig = xerrors.New("invalid config")

// Config holds everything needed for one render
type Config struct {
	Scene           string `yaml:"scene"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	TileSize        int    `yaml:"tile_size"`
	NumWorkers      int    `yaml:"num_workers"` // 0 means one per CPU
	Seed            int64  `yaml:"seed"`
	Background      string `yaml:"background"`     // scene, black, sky or white
	LightSampling   string `yaml:"light_sampling"` // uniform, weighted or off
	Output          string `yaml:"output"`
	Format          string `yaml:"format"` // png or ppm; empty picks from the output extension
	TexturePath     string `yaml:"texture_path"` // empty uses a procedural globe
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scene:           "default",
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
		Background:      "scene",
		LightSampling:   scene.LightSamplingUniform,
		Output:          "output/render.png",
		Format:          "",
		TexturePath:     "",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default values.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, xerrors.Errorf("while reading config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, xerrors.Errorf("while parsing config %q: %w", filePath, err)
	}

	return config, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(filePath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return xerrors.Errorf("while serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return xerrors.Errorf("while writing config file: %w", err)
	}

	return nil
}

// Validate rejects values the renderer cannot use
func (c *Config) Validate() error {
	switch {
	case c.Scene == "":
		return xerrors.Errorf("scene must be set: %w", ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return xerrors.Errorf("image size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.SamplesPerPixel <= 0:
		return xerrors.Errorf("samples_per_pixel %d: %w", c.SamplesPerPixel, ErrInvalidConfig)
	case c.MaxDepth <= 0:
		return xerrors.Errorf("max_depth %d: %w", c.MaxDepth, ErrInvalidConfig)
	case c.TileSize < 0 || c.NumWorkers < 0:
		return xerrors.Errorf("tile_size %d, num_workers %d: %w", c.TileSize, c.NumWorkers, ErrInvalidConfig)
	}

	switch c.LightSampling {
	case scene.LightSamplingUniform, scene.LightSamplingWeighted, scene.LightSamplingOff:
	default:
		return xerrors.Errorf("light_sampling %q: %w", c.LightSampling, ErrInvalidConfig)
	}

	if _, err := scene.ParseBackground(c.Background); err != nil {
		return xerrors.Errorf("background: %w", ErrInvalidConfig)
	}

	switch c.Format {
	case "", renderer.FormatPNG, renderer.FormatPPM:
	default:
		return xerrors.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}

	return nil
}

// OutputFormat returns Format, or the format implied by the output file name
func (c *Config) OutputFormat() string {
	if c.Format != "" {
		return c.Format
	}
	return renderer.FormatFromPath(c.Output)
}

// SamplingConfig returns the per-render sampling settings for the scene
func (c *Config) SamplingConfig() scene.SamplingConfig {
	return scene.SamplingConfig{
		Width:           c.Width,
		Height:          c.Height,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		LightSampling:   c.LightSampling,
	}
}

// RendererConfig returns the tile renderer settings
func (c *Config) RendererConfig() renderer.Config {
	return renderer.Config{
		Width:           c.Width,
		Height:          c.Height,
		SamplesPerPixel: c.SamplesPerPixel,
		TileSize:        c.TileSize,
		NumWorkers:      c.NumWorkers,
		Seed:            c.Seed,
	}
}
