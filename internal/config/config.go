// Package config loads the maestro service configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete service configuration.
type Config struct {
	Addr string `yaml:"addr"`

	FramesDir          string `yaml:"frames_dir"`
	PortraitsDir       string `yaml:"portraits_dir"`
	CustomPortraitsDir string `yaml:"custom_portraits_dir"` // optional; custom cards are rejected when empty
	RendersDir         string `yaml:"renders_dir"`

	RenderTimeout   time.Duration `yaml:"render_timeout"`   // per-request budget, e.g. "60s"
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // graceful drain on SIGINT/SIGTERM

	Fan      FanConfig   `yaml:"fan"`
	Album    AlbumConfig `yaml:"album"`
	Modifier string      `yaml:"modifier"` // layer prefix selected by the kindled flag

	Workers            int `yaml:"workers"`     // pixel worker pool size, 0 = GOMAXPROCS
	BatchLimit         int `yaml:"batch_limit"` // cards rendered at once per batch, 0 = all
	MaxBatch           int `yaml:"max_batch"`   // largest accepted fan or album
	MemoryCacheEntries int `yaml:"memory_cache_entries"`

	PNGCompression string `yaml:"png_compression"` // default, none, fast, best
	AuthToken      string `yaml:"auth_token"`      // enables DELETE /render/{name} when set

	Log LogConfig `yaml:"log"`
}

// FanConfig contains fan layout settings.
type FanConfig struct {
	Angle  float64 `yaml:"angle"`  // degrees between neighbouring cards
	Radius float64 `yaml:"radius"` // arc radius in pixels
}

// AlbumConfig contains album layout settings.
type AlbumConfig struct {
	Padding int `yaml:"padding"` // pixels between and around cells
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when no file is given. Values in
// a loaded file override these field by field.
func Default() *Config {
	return &Config{
		Addr:               "127.0.0.1:8899",
		FramesDir:          "../cdn/private/frame",
		PortraitsDir:       "../cdn/public/character",
		CustomPortraitsDir: "../cdn/private/custom-card",
		RendersDir:         "../cdn/public/render",
		RenderTimeout:      60 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		Fan: FanConfig{
			Angle:  5,
			Radius: 2000,
		},
		Album: AlbumConfig{
			Padding: 20,
		},
		Modifier:           "kindled",
		MaxBatch:           64,
		MemoryCacheEntries: 256,
		PNGCompression:     "default",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML configuration file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.FramesDir == "" {
		errs = append(errs, errors.New("frames_dir is required"))
	}
	if c.PortraitsDir == "" {
		errs = append(errs, errors.New("portraits_dir is required"))
	}
	if c.RendersDir == "" {
		errs = append(errs, errors.New("renders_dir is required"))
	}
	if c.RenderTimeout <= 0 {
		errs = append(errs, fmt.Errorf("render_timeout must be positive, got %s", c.RenderTimeout))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must not be negative, got %s", c.ShutdownTimeout))
	}
	if c.Fan.Radius <= 0 {
		errs = append(errs, fmt.Errorf("fan.radius must be positive, got %v", c.Fan.Radius))
	}
	if c.Album.Padding < 0 {
		errs = append(errs, fmt.Errorf("album.padding must not be negative, got %d", c.Album.Padding))
	}
	if c.Workers < 0 || c.BatchLimit < 0 || c.MemoryCacheEntries < 0 {
		errs = append(errs, errors.New("workers, batch_limit and memory_cache_entries must not be negative"))
	}
	if c.MaxBatch <= 0 {
		errs = append(errs, fmt.Errorf("max_batch must be positive, got %d", c.MaxBatch))
	}
	if _, err := parseCompression(c.PNGCompression); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Compression returns the PNG encoder level named by png_compression.
// Unknown names fall back to the default level; Validate rejects them.
func (c *Config) Compression() png.CompressionLevel {
	level, _ := parseCompression(c.PNGCompression)
	return level
}

// LogLevel returns the slog level named by log.level, or info if unknown.
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseCompression(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "fast":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	}
	return png.DefaultCompression, fmt.Errorf("png_compression must be default, none, fast or best, got %q", name)
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
