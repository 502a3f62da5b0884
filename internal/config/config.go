// Package config loads the clock's settings from defaults, a YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"matrixclock/face"
	"matrixclock/fonts"
)

// Config is the full clock configuration.
type Config struct {
	Blink bool `yaml:"blink"`
	Debug bool `yaml:"debug"`

	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Align  string `yaml:"align"`
	Margin int    `yaml:"margin"`
	Hours  string `yaml:"hours"`
	Font   string `yaml:"font"`

	// Palette is a list of hex colors, background first and scratch last,
	// or a single "hsluv:<n>" entry.
	Palette     []string   `yaml:"palette"`
	Slots       face.Slots `yaml:"slots"`
	Rotation    string     `yaml:"rotation"`
	RotateEvery int        `yaml:"rotate_every"`

	Tick         time.Duration `yaml:"tick"`
	SyncInterval time.Duration `yaml:"sync_interval"`

	TimeSync TimeSync `yaml:"timesync"`
}

// TimeSync is the network time service account.
type TimeSync struct {
	URL      string        `yaml:"url"`
	Username string        `yaml:"username"`
	Key      string        `yaml:"key"`
	Timezone string        `yaml:"timezone"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the settings of the stock 64x32 clock.
func Default() Config {
	return Config{
		Blink:        true,
		Width:        64,
		Height:       32,
		Align:        face.AlignLeft.String(),
		Margin:       face.DefaultMargin,
		Hours:        "auto",
		Font:         fonts.Segment,
		Slots:        face.DefaultSlots,
		Rotation:     face.RotateOnBlinkOn.String(),
		RotateEvery:  2,
		Tick:         time.Second,
		SyncInterval: time.Hour,
		TimeSync: TimeSync{
			URL:     "https://io.adafruit.com",
			Timeout: 10 * time.Second,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv fills the time service account from AIO_USERNAME, AIO_KEY and
// TIMEZONE when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv("AIO_USERNAME"); v != "" {
		c.TimeSync.Username = v
	}
	if v := getenv("AIO_KEY"); v != "" {
		c.TimeSync.Key = v
	}
	if v := getenv("TIMEZONE"); v != "" {
		c.TimeSync.Timezone = v
	}
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if _, err := face.ParseAlignment(c.Align); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.HourDigits(); err != nil {
		errs = append(errs, err)
	}
	if _, err := face.ParseRotationPolicy(c.Rotation); err != nil {
		errs = append(errs, err)
	}
	if c.RotateEvery <= 0 {
		errs = append(errs, fmt.Errorf("rotate_every %d must be positive", c.RotateEvery))
	}
	if _, err := fonts.ByName(c.FontName()); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.BuildPalette(); err != nil {
		errs = append(errs, err)
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick %v must be positive", c.Tick))
	}
	if c.SyncInterval <= 0 {
		errs = append(errs, fmt.Errorf("sync_interval %v must be positive", c.SyncInterval))
	}
	return errors.Join(errs...)
}

// FontName is the configured font, or the 6x8 font in debug mode.
func (c Config) FontName() string {
	if c.Debug {
		return fonts.Small
	}
	return c.Font
}

// HourDigits parses Hours.
func (c Config) HourDigits() (face.HourDigits, error) {
	switch c.Hours {
	case "", "auto":
		return face.HoursAuto, nil
	case "padded":
		return face.HoursPadded, nil
	}
	return face.HoursAuto, fmt.Errorf("unknown hours mode %q", c.Hours)
}

// Layout returns the layout options for the configured surface.
func (c Config) Layout() face.LayoutOptions {
	align, _ := face.ParseAlignment(c.Align)
	hours, _ := c.HourDigits()
	return face.LayoutOptions{Width: c.Width, Height: c.Height, Align: align, Margin: c.Margin, Hours: hours}
}

// BuildPalette returns a fresh palette. An empty list gives the rainbow.
func (c Config) BuildPalette() (*face.Palette, error) {
	if len(c.Palette) == 0 {
		return face.Rainbow(), nil
	}
	if len(c.Palette) == 1 && strings.HasPrefix(c.Palette[0], "hsluv:") {
		n, err := strconv.Atoi(strings.TrimPrefix(c.Palette[0], "hsluv:"))
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", c.Palette[0], err)
		}
		return face.HSLuvRainbow(n)
	}
	colors := make([]color.RGBA, 0, len(c.Palette))
	for _, s := range c.Palette {
		col, err := face.ParseHex(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return face.NewPalette(colors)
}

// Painter builds the palette and its rotation policy.
func (c Config) Painter() (*face.Painter, error) {
	p, err := c.BuildPalette()
	if err != nil {
		return nil, err
	}
	policy, err := face.ParseRotationPolicy(c.Rotation)
	if err != nil {
		return nil, err
	}
	return face.NewPainter(p, c.Slots, policy, c.RotateEvery, c.Blink), nil
}
