package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// cliFlags holds command line values; only flags that were set override the config file
type cliFlags struct {
	config      string
	writeConfig string
	list        bool

	scene         string
	width         int
	height        int
	samples       int
	maxDepth      int
	tileSize      int
	workers       int
	seed          int64
	background    string
	lightSampling string
	output        string
	format        string
	texturePath   string
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	f := &cliFlags{}
	fs.StringVar(&f.config, "config", "", "YAML render config; flags override its values")
	fs.StringVar(&f.writeConfig, "write-config", "", "Write the effective config to this path and exit")
	fs.BoolVar(&f.list, "list", false, "List available scenes and exit")

	fs.StringVar(&f.scene, "scene", "", "Scene to render (see -list)")
	fs.IntVar(&f.width, "width", 0, "Image width in pixels")
	fs.IntVar(&f.height, "height", 0, "Image height in pixels")
	fs.IntVar(&f.samples, "samples", 0, "Samples per pixel")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "Maximum bounces per path")
	fs.IntVar(&f.tileSize, "tile-size", 0, "Tile edge length in pixels")
	fs.IntVar(&f.workers, "workers", 0, "Render goroutines (0 = one per CPU)")
	fs.Int64Var(&f.seed, "seed", 0, "Base random seed")
	fs.StringVar(&f.background, "background", "", "Background: scene, black, sky or white")
	fs.StringVar(&f.lightSampling, "light-sampling", "", "Light sampling: uniform, weighted or off")
	fs.StringVar(&f.output, "output", "", "Output image path")
	fs.StringVar(&f.format, "format", "", "Output format: png or ppm (default from the output extension)")
	fs.StringVar(&f.texturePath, "texture", "", "Image file for image-textured scenes")
	return f
}

// apply copies every flag that was set on the command line into cfg
func (f *cliFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "scene":
			cfg.Scene = f.scene
		case "width":
			cfg.Width = f.width
		case "height":
			cfg.Height = f.height
		case "samples":
			cfg.SamplesPerPixel = f.samples
		case "max-depth":
			cfg.MaxDepth = f.maxDepth
		case "tile-size":
			cfg.TileSize = f.tileSize
		case "workers":
			cfg.NumWorkers = f.workers
		case "seed":
			cfg.Seed = f.seed
		case "background":
			cfg.Background = f.background
		case "light-sampling":
			cfg.LightSampling = f.lightSampling
		case "output":
			cfg.Output = f.output
		case "format":
			cfg.Format = f.format
		case "texture":
			cfg.TexturePath = f.texturePath
		}
	})
}

// loadConfig reads the config file, or returns the defaults when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// buildScene constructs and preprocesses the configured scene
func buildScene(cfg *config.Config) (*scene.Scene, error) {
	background, err := scene.ParseBackground(cfg.Background)
	if err != nil {
		return nil, err
	}

	s, err := scene.Build(cfg.Scene, scene.Options{
		Seed:        cfg.Seed,
		TexturePath: cfg.TexturePath,
		Camera:      geometry.CameraConfig{AspectRatio: float64(cfg.Width) / float64(cfg.Height)},
	})
	if err != nil {
		return nil, err
	}

	if background != nil {
		s.Background = background
	}
	s.SamplingConfig = cfg.SamplingConfig()

	if err := s.Preprocess(); err != nil {
		return nil, xerrors.Errorf("while preparing scene %q: %w", cfg.Scene, err)
	}
	return s, nil
}

// render builds the scene described by cfg and traces it
func render(ctx context.Context, cfg *config.Config, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, renderer.RenderStats{}, err
	}

	s, err := buildScene(cfg)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	logger.Printf("Scene %q: %s objects, %d lights, BVH %s nodes (depth %d)\n",
		cfg.Scene, humanize.Comma(int64(len(s.Objects))), len(s.Lights),
		humanize.Comma(int64(s.BVHStats.Nodes)), s.BVHStats.MaxDepth)

	pathTracer := integrator.NewPathTracingIntegrator(integrator.ConfigFromSampling(s.SamplingConfig))
	return renderer.NewRaytracer(s, pathTracer, cfg.RendererConfig(), logger).Render(ctx)
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
}

func main() {
	flags := registerFlags(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	if flags.list {
		printScenes()
		return
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		glog.Exitf("Loading config: %v", err)
	}
	flags.apply(flag.CommandLine, cfg)

	if flags.writeConfig != "" {
		if err := cfg.Save(flags.writeConfig); err != nil {
			glog.Exitf("Saving config: %v", err)
		}
		glog.Infof("Config written to %s", flags.writeConfig)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := render(ctx, cfg, renderer.NewGlogLogger())
	if err != nil {
		glog.Exitf("Rendering %q: %v", cfg.Scene, err)
	}

	if err := renderer.SaveImage(cfg.Output, img, cfg.OutputFormat()); err != nil {
		glog.Exitf("Saving image: %v", err)
	}
	glog.Infof("Render saved as %s (%v, average luminance %.3f)",
		cfg.Output, stats.Duration, renderer.CalculateAverageLuminance(img))
}
