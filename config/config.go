// Package config loads runtime settings for the topdown hosts from an
// optional YAML file, TOPDOWN_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DefaultName is the file stem searched for in the working directory.
	DefaultName = "topdown"
	EnvPrefix   = "TOPDOWN"
)

type Config struct {
	Assets Assets `mapstructure:"assets"`
	Player Player `mapstructure:"player"`
	Log    Log    `mapstructure:"log"`
	Window Window `mapstructure:"window"`
	Tick   Tick   `mapstructure:"tick"`

	// File is the config file that was read, empty when running on defaults.
	File string `mapstructure:"-"`
}

// Assets holds asset locations. Setting Map or Mask to an empty string starts
// without placements or without terrain collision.
type Assets struct {
	Types  string `mapstructure:"types"`
	Map    string `mapstructure:"map"`
	Mask   string `mapstructure:"mask"`
	Images string `mapstructure:"images"`
}

type Player struct {
	Type  string  `mapstructure:"type"`
	Speed float64 `mapstructure:"speed"`
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
}

type Window struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

type Tick struct {
	Rate int `mapstructure:"rate"`
}

// Interval is the duration of one tick at Rate ticks per second.
func (t Tick) Interval() time.Duration {
	return time.Second / time.Duration(t.Rate)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("assets.types", "assets/types")
	v.SetDefault("assets.map", "assets/map.yaml")
	v.SetDefault("assets.mask", "assets/mask.png")
	v.SetDefault("assets.images", "assets/images")

	v.SetDefault("player.type", "player")
	v.SetDefault("player.speed", 600.0)
	v.SetDefault("player.x", 0.0)
	v.SetDefault("player.y", 0.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)

	v.SetDefault("window.title", "topdown")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)

	v.SetDefault("tick.rate", 60)
}

// Load reads path, or topdown.yaml from the working directory when path is
// empty. A missing default file is not an error; a missing explicit one is.
// Relative asset paths in a config file are resolved against its directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.File != "" {
		cfg.Assets.resolve(filepath.Dir(cfg.File))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (a *Assets) resolve(dir string) {
	for _, p := range []*string{&a.Types, &a.Map, &a.Mask, &a.Images} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func (c *Config) Validate() error {
	if c.Assets.Types == "" {
		return errors.New("config: assets.types is required")
	}
	if c.Player.Type == "" {
		return errors.New("config: player.type is required")
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("config: player.speed must be positive, got %v", c.Player.Speed)
	}
	if c.Tick.Rate <= 0 {
		return fmt.Errorf("config: tick.rate must be positive, got %d", c.Tick.Rate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
