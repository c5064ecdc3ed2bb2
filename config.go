package tiltcard

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) by Validate and LoadConfig when a
// config value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config defaults.
const (
	DefaultCardWidth    = 448.0
	DefaultCardHeight   = 560.0
	DefaultPerspective  = 1000.0
	DefaultTessellation = 8

	defaultWindowTitle  = "Tilt Card"
	defaultWindowWidth  = 960
	defaultWindowHeight = 720
)

// WindowConfig controls the host window created by Run.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
}

// ContentConfig holds the card's text.
type ContentConfig struct {
	Initial     string `yaml:"initial"`
	Title       string `yaml:"title"`
	Lead        string `yaml:"lead"`
	Highlight   string `yaml:"highlight"`
	Description string `yaml:"description"`
}

// Config is the complete card configuration. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Window       WindowConfig  `yaml:"window"`
	CardWidth    float64       `yaml:"card_width"`
	CardHeight   float64       `yaml:"card_height"`
	Perspective  float64       `yaml:"perspective"`
	RotateX      AxisMapper    `yaml:"rotate_x"`
	RotateY      AxisMapper    `yaml:"rotate_y"`
	Tilt         SpringParams  `yaml:"tilt"`
	Entrance     SpringParams  `yaml:"entrance"`
	PressPolicy  PressPolicy   `yaml:"press_policy"`
	Tessellation int           `yaml:"tessellation"`
	Content      ContentConfig `yaml:"content"`
	Debug        bool          `yaml:"debug"`
}

// DefaultConfig returns the stock card: 448x560, 15 degree tilt, stiffness
// 300 and damping 30.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  defaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		CardWidth:    DefaultCardWidth,
		CardHeight:   DefaultCardHeight,
		Perspective:  DefaultPerspective,
		RotateX:      RotateXMapper(),
		RotateY:      RotateYMapper(),
		Tilt:         SpringParams{Stiffness: DefaultStiffness, Damping: DefaultDamping},
		Entrance:     SpringParams{Stiffness: 260, Damping: 20},
		PressPolicy:  PressHoldUntilUp,
		Tessellation: DefaultTessellation,
		Content: ContentConfig{
			Initial:     "D",
			Title:       "Premium Component",
			Lead:        "Experience premium UI/UX with",
			Highlight:   "cutting-edge animations",
			Description: "and micro-interactions that delight users.",
		},
	}
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.CardWidth <= 0 || c.CardHeight <= 0:
		return fmt.Errorf("%w: card size %vx%v", ErrInvalidConfig, c.CardWidth, c.CardHeight)
	case c.Perspective <= 0:
		return fmt.Errorf("%w: perspective %v must be positive", ErrInvalidConfig, c.Perspective)
	case !c.RotateX.valid():
		return fmt.Errorf("%w: rotate_x domain is empty", ErrInvalidConfig)
	case !c.RotateY.valid():
		return fmt.Errorf("%w: rotate_y domain is empty", ErrInvalidConfig)
	case c.Tilt.Stiffness <= 0 || c.Tilt.Damping < 0:
		return fmt.Errorf("%w: tilt spring %+v", ErrInvalidConfig, c.Tilt)
	case c.Entrance.Stiffness <= 0 || c.Entrance.Damping < 0:
		return fmt.Errorf("%w: entrance spring %+v", ErrInvalidConfig, c.Entrance)
	case c.Tessellation < 1 || c.Tessellation > 64:
		return fmt.Errorf("%w: tessellation %d not in [1, 64]", ErrInvalidConfig, c.Tessellation)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
