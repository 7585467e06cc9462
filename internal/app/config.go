package app

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"layerpaint/internal/core"
	"layerpaint/internal/history"
	"layerpaint/internal/layer"
	"layerpaint/internal/session"
	"layerpaint/internal/store"
)

// Config represents the application settings. Values come from defaults, an
// optional TOML file, PAINT_* environment variables and command-line flags,
// in increasing order of precedence.
type Config struct {
	File string `toml:"-"`

	Width      int          `toml:"width" env:"PAINT_WIDTH"`
	Height     int          `toml:"height" env:"PAINT_HEIGHT"`
	Policy     store.Policy `toml:"policy" env:"PAINT_POLICY"`
	Background layer.Color  `toml:"background" env:"PAINT_BACKGROUND"`

	StoreCapacity  int `toml:"store_capacity" env:"PAINT_STORE_CAPACITY"`
	UndoCapacity   int `toml:"undo_capacity" env:"PAINT_UNDO_CAPACITY"`
	ReplayCapacity int `toml:"replay_capacity" env:"PAINT_REPLAY_CAPACITY"`

	Scale      int `toml:"scale" env:"PAINT_SCALE"`
	TPS        int `toml:"tps" env:"PAINT_TPS"`
	ReplayRate int `toml:"replay_rate" env:"PAINT_REPLAY_RATE"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:          80,
		Height:         60,
		Policy:         store.Additive,
		Background:     layer.RGB(255, 255, 255),
		StoreCapacity:  store.DefaultCapacity,
		UndoCapacity:   history.DefaultUndoCapacity,
		ReplayCapacity: history.DefaultReplayCapacity,
		Scale:          8,
		TPS:            60,
		ReplayRate:     20,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "TOML configuration file")
	fs.IntVar(&c.Width, "w", c.Width, "canvas width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "canvas height in cells")
	fs.TextVar(&c.Policy, "policy", c.Policy, "composition policy: overwrite, additive or type-toggle")
	fs.TextVar(&c.Background, "background", c.Background, "background color as #rrggbb")
	fs.IntVar(&c.StoreCapacity, "store-capacity", c.StoreCapacity, "layers kept per cell")
	fs.IntVar(&c.UndoCapacity, "undo-capacity", c.UndoCapacity, "undo and redo stack size")
	fs.IntVar(&c.ReplayCapacity, "replay-capacity", c.ReplayCapacity, "recorded actions kept for replay")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.ReplayRate, "replay-rate", c.ReplayRate, "replayed actions per second")
}

// LoadFile decodes a TOML file over the current values.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// LoadEnv applies PAINT_* environment overrides.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve layers the config file and environment under any flags that were
// set explicitly on fs. Call it after fs.Parse.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})
	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			return err
		}
	}
	if err := c.LoadEnv(); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply -%s: %w", name, err)
		}
	}
	return c.Session().Grid.Validate()
}

// Session converts the settings into a session configuration.
func (c *Config) Session() session.Config {
	return session.Config{
		Grid: core.GridConfig{
			Policy:        c.Policy,
			Width:         c.Width,
			Height:        c.Height,
			StoreCapacity: c.StoreCapacity,
		},
		UndoCapacity:   c.UndoCapacity,
		ReplayCapacity: c.ReplayCapacity,
	}
}
