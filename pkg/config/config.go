// Package config loads render/scene settings from YAML, with individual
// fields overridable from the command line.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a render run needs beyond the scene geometry
// itself: image dimensions, sampling, worker count, and camera placement.
type Config struct {
	ImageWidth      int     `yaml:"image_width"`
	AspectRatio     float64 `yaml:"aspect_ratio"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	NumWorkers      int     `yaml:"num_workers"`

	Camera CameraConfig `yaml:"camera"`

	OutputPath string `yaml:"output_path"`
}

// CameraConfig mirrors scene.Camera's placement fields so a scene's
// viewpoint can be driven entirely from a YAML file.
type CameraConfig struct {
	LookFrom     [3]float64 `yaml:"look_from"`
	LookAt       [3]float64 `yaml:"look_at"`
	VFov         float64    `yaml:"vfov"`
	DefocusAngle float64    `yaml:"defocus_angle"`
}

// Default returns the settings a run uses when no YAML file is given.
func Default() Config {
	return Config{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0, // 0 means runtime.NumCPU()
		Camera: CameraConfig{
			LookFrom: [3]float64{0, 0, 0},
			LookAt:   [3]float64{0, 0, -1},
			VFov:     40,
		},
		OutputPath: "render.png",
	}
}

// Load reads and unmarshals a YAML config file, starting from Default() so
// a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return cfg, nil
}
