package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gogpu/nodeimg"
	"github.com/gogpu/nodeimg/internal/document"
	"github.com/gogpu/nodeimg/resource"
	"github.com/gogpu/nodeimg/style"
)

// Config is the resolved configuration of one invocation. Values come
// from, in increasing precedence: defaults, nodeimg.yaml, NODEIMG_*
// environment variables and flags.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Fonts    []string       `mapstructure:"fonts"`
	Quality  int            `mapstructure:"quality"`
	Viewport ViewportConfig `mapstructure:"viewport"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type FetchConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
}

type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// ViewportConfig overrides the viewport a document asks for. Zero
// fields leave the document's value alone.
type ViewportConfig struct {
	Width            uint32  `mapstructure:"width"`
	Height           uint32  `mapstructure:"height"`
	FontSize         float32 `mapstructure:"font_size"`
	DevicePixelRatio float32 `mapstructure:"dpr"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("fetch.timeout", resource.DefaultFetchTimeout)
	v.SetDefault("fetch.concurrency", resource.DefaultFetchConcurrency)
	v.SetDefault("cache.capacity", resource.DefaultCacheCapacity)
	v.SetDefault("fonts", []string{})
	v.SetDefault("quality", 90)
	v.SetDefault("viewport.width", 0)
	v.SetDefault("viewport.height", 0)
	v.SetDefault("viewport.font_size", 0)
	v.SetDefault("viewport.dpr", 0)
}

// NewConfigFromViper unmarshals and validates v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values a typo would most likely break.
func (c *Config) Validate() error {
	if _, err := c.Log.level(); err != nil {
		return err
	}
	if c.Fetch.Concurrency < 0 {
		return errors.New("fetch.concurrency must not be negative")
	}
	if c.Cache.Capacity < 0 {
		return errors.New("cache.capacity must not be negative")
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("quality %d out of range 1-100", c.Quality)
	}
	if c.Viewport.FontSize < 0 || c.Viewport.DevicePixelRatio < 0 {
		return errors.New("viewport font size and dpr must be positive")
	}
	return nil
}

func (c LogConfig) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// globalOptions maps the fetch and cache settings onto the library.
func (c *Config) globalOptions() []nodeimg.GlobalOption {
	return []nodeimg.GlobalOption{
		nodeimg.WithCacheCapacity(c.Cache.Capacity),
		nodeimg.WithFetchTimeout(c.Fetch.Timeout),
		nodeimg.WithFetchConcurrency(c.Fetch.Concurrency),
	}
}

// viewport merges the document's viewport with the configured overrides.
func (c *Config) viewport(doc document.Viewport) nodeimg.Viewport {
	var vp nodeimg.Viewport
	if doc.Width != nil {
		vp.Width = style.Some(*doc.Width)
	}
	if doc.Height != nil {
		vp.Height = style.Some(*doc.Height)
	}
	if doc.FontSize != nil {
		vp.FontSize = *doc.FontSize
	}
	if doc.DevicePixelRatio != nil {
		vp.DevicePixelRatio = *doc.DevicePixelRatio
	}

	o := c.Viewport
	if o.Width > 0 {
		vp.Width = style.Some(o.Width)
	}
	if o.Height > 0 {
		vp.Height = style.Some(o.Height)
	}
	if o.FontSize > 0 {
		vp.FontSize = o.FontSize
	}
	if o.DevicePixelRatio > 0 {
		vp.DevicePixelRatio = o.DevicePixelRatio
	}
	return vp
}
