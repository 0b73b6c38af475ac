package config

import "flag"

// RegisterFlags binds command-line flags that override cfg's fields, in
// the teacher's flag.XxxVar style. Call flag.Parse() after this.
func RegisterFlags(cfg *Config, configPath *string) {
	flag.StringVar(configPath, "config", "", "Path to a YAML config file (overrides the built-in defaults)")
	flag.IntVar(&cfg.ImageWidth, "width", cfg.ImageWidth, "Output image width in pixels")
	flag.Float64Var(&cfg.AspectRatio, "aspect", cfg.AspectRatio, "Image aspect ratio (width/height)")
	flag.IntVar(&cfg.SamplesPerPixel, "spp", cfg.SamplesPerPixel, "Samples per pixel")
	flag.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Maximum ray bounce depth")
	flag.IntVar(&cfg.NumWorkers, "workers", cfg.NumWorkers, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Output PNG path")
}
