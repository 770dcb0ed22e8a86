package scene

import (
	"sort"
	"strings"

	"golang.org/x/xerrors"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned by Build for ids that are not registered
var ErrUnknownScene = xerrors.New("unknown scene")

// Options are the inputs a scene builder may use
type Options struct {
	Seed        int64                 // Seed for scenes with random content
	TexturePath string                // Image file for image-textured objects; empty uses a procedural image
	Camera      geometry.CameraConfig // Non-zero fields override the scene's camera
}

// Builder constructs a scene
type Builder func(opts Options) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string
	DisplayName string
	Description string
}

type entry struct {
	info  SceneInfo
	build Builder
}

var registry = map[string]entry{}

func register(id, description string, build Builder) {
	registry[id] = entry{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
		},
		build: build,
	}
}

func init() {
	register("default", "Moving diffuse sphere, fuzzy metal and a hollow glass sphere under a sky", NewDefaultScene)
	register("random", "Cover scene: a field of random small spheres around three large ones", NewRandomScene)
	register("textures", "Checker ground, Perlin marble and an image-textured globe", NewTexturesScene)
	register("simple-light", "Marble spheres lit by a striped rectangular panel light", NewSimpleLightScene)
	register("cornell", "Cornell box with a ceiling light and two rotated boxes", NewCornellScene)
	register("cornell-smoke", "Cornell box with both boxes replaced by black and white fog", NewCornellSmokeScene)
	register("final", "Box field floor, fog, glass, metal, marble and a rotated cluster of spheres", NewFinalScene)
}

// ListScenes returns every registered scene sorted by id
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		scenes = append(scenes, e.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Build constructs the scene registered under id
func Build(id string, opts Options) (*Scene, error) {
	e, ok := registry[id]
	if !ok {
		return nil, xerrors.Errorf("while building scene %q: %w", id, ErrUnknownScene)
	}
	s, err := e.build(opts)
	if err != nil {
		return nil, xerrors.Errorf("while building scene %q: %w", id, err)
	}
	return s, nil
}

// newScene assembles a scene around a default camera with overrides applied
func newScene(cameraConfig geometry.CameraConfig, opts Options, background Background) *Scene {
	cameraConfig = geometry.MergeCameraConfig(cameraConfig, opts.Camera)
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Objects:        make([]geometry.Hittable, 0),
		Background:     background,
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// titleCase converts an id to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
