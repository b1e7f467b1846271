package dinopet

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the host application configuration, normally loaded from YAML.
// Zero or missing fields are filled in by applyDefaults, so a partial file
// is fine.
type Config struct {
	Title      string `yaml:"title"`
	AssetPath  string `yaml:"asset_path"`
	WatchAsset bool   `yaml:"watch_assets"`

	CanvasWidth  int    `yaml:"canvas_width"`
	CanvasHeight int    `yaml:"canvas_height"`
	WindowScale  int    `yaml:"window_scale"`
	Background   string `yaml:"background"` // #RRGGBB or #RRGGBBAA
	ShowFPS      bool   `yaml:"show_fps"`

	MoveSpeed      float64 `yaml:"move_speed"`      // px/s toward target
	Gravity        float64 `yaml:"gravity"`         // px/s^2
	AnimationFPS   float64 `yaml:"animation_fps"`   // walk-cycle frame rate
	HungerInterval float64 `yaml:"hunger_interval"` // seconds per hunger point
	PetScale       float64 `yaml:"pet_scale"`       // integer-nearest render scale
	ScreenshotDir  string  `yaml:"screenshot_dir"`
}

// DefaultConfig returns the configuration the pet host runs with when no
// file is given.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads and decodes a YAML config file, then fills defaults for
// anything the file left unset.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dinopet: load config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("dinopet: unmarshal config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Dino Pet"
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = 600
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = 400
	}
	if c.WindowScale <= 0 {
		c.WindowScale = 1
	}
	if c.Background == "" {
		c.Background = "#87CEEB" // sky blue
	}
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = 50
	}
	if c.Gravity <= 0 {
		c.Gravity = 200
	}
	if c.AnimationFPS <= 0 {
		c.AnimationFPS = 10
	}
	if c.HungerInterval <= 0 {
		c.HungerInterval = 5
	}
	if c.PetScale <= 0 {
		c.PetScale = 1
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
}

// BackgroundRGBA parses the configured background color. Unparseable values
// fall back to opaque sky blue rather than failing the frame.
func (c *Config) BackgroundRGBA() RGBA {
	col, err := ParseHexColor(c.Background)
	if err != nil {
		return SkyBlue
	}
	return col
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional) into
// an RGBA. Missing alpha means opaque.
func ParseHexColor(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return RGBA{}, fmt.Errorf("dinopet: hex color %q: want 6 or 8 digits", s)
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("dinopet: hex color %q: %w", s, err)
	}
	if len(s) == 6 {
		n = n<<8 | 0xFF
	}
	return RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}
