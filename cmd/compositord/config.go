package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggpaint/compositor"
)

// Config is the service configuration file.
type Config struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	LogLevel          string        `yaml:"log_level"`

	// CacheEntries enables a result cache of that many entries. Zero
	// disables it.
	CacheEntries int `yaml:"cache_entries"`

	// Shapes limits the served shapes. Empty serves every built-in.
	Shapes []string `yaml:"shapes"`
}

func defaultConfig() Config {
	return Config{
		Addr:              ":8088",
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		LogLevel:          "info",
	}
}

var errUnknownShape = errors.New("unknown shape in config")

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// newCompositor builds the compositor the config asks for.
func (c Config) newCompositor() (compositor.Compositor, error) {
	reg, err := c.registry()
	if err != nil {
		return nil, err
	}
	raster := compositor.NewRaster(compositor.WithRegistry(reg))
	if c.CacheEntries > 0 {
		return compositor.NewCached(raster, c.CacheEntries), nil
	}
	return raster, nil
}

// registry builds the shape registry the config asks for.
func (c Config) registry() (*compositor.Registry, error) {
	reg := compositor.NewRegistry()
	if len(c.Shapes) == 0 {
		return reg, nil
	}
	for _, s := range c.Shapes {
		if _, ok := reg.Lookup(s); !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownShape, s)
		}
	}
	for _, s := range reg.Shapes() {
		if !slices.Contains(c.Shapes, s) {
			reg.Unregister(s)
		}
	}
	return reg, nil
}
