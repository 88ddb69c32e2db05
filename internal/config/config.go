package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate
var ErrInvalid = errors.New("invalid configuration")

// Config holds every tunable of the viewer
type Config struct {
	Walking   WalkingConfig   `yaml:"walking" toml:"walking"`
	Measuring MeasuringConfig `yaml:"measuring" toml:"measuring"`
	Window    WindowConfig    `yaml:"window" toml:"window"`
	Assets    AssetsConfig    `yaml:"assets" toml:"assets"`

	Debounce  float64 `yaml:"debounce" toml:"debounce"` // seconds
	ToggleKey string  `yaml:"toggle_key" toml:"toggle_key"`
	Debug     bool    `yaml:"debug" toml:"debug"`
	Watch     bool    `yaml:"watch" toml:"watch"`
}

type WalkingConfig struct {
	Speed    float64 `yaml:"speed" toml:"speed"`
	MapScale float64 `yaml:"map_scale" toml:"map_scale"`
	PinScale float64 `yaml:"pin_scale" toml:"pin_scale"`
}

type MeasuringConfig struct {
	ReferenceScale float64 `yaml:"reference_scale" toml:"reference_scale"`
	HitRadius      float64 `yaml:"hit_radius" toml:"hit_radius"`
}

type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	FPS        int    `yaml:"fps" toml:"fps"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
}

// AssetsConfig holds texture paths relative to Dir
type AssetsConfig struct {
	Dir                string `yaml:"dir" toml:"dir"`
	Map                string `yaml:"map" toml:"map"`
	Pin                string `yaml:"pin" toml:"pin"`
	WalkingIndicator   string `yaml:"walking_indicator" toml:"walking_indicator"`
	MeasuringIndicator string `yaml:"measuring_indicator" toml:"measuring_indicator"`
	Corner             string `yaml:"corner" toml:"corner"`
	Digits             string `yaml:"digits" toml:"digits"`
	Cursor             string `yaml:"cursor" toml:"cursor"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Walking: WalkingConfig{
			Speed:    0.4,
			MapScale: 8,
			PinScale: 0.05,
		},
		Measuring: MeasuringConfig{
			ReferenceScale: 2,
			HitRadius:      0.03,
		},
		Window: WindowConfig{
			Title:  "Kretanje po mapi",
			Width:  1280,
			Height: 800,
			FPS:    75,
		},
		Assets: AssetsConfig{
			Dir:                "resources/textures",
			Map:                "map.jpg",
			Pin:                "pin.png",
			WalkingIndicator:   "walking.png",
			MeasuringIndicator: "ruler.png",
			Corner:             "student_info.png",
			Digits:             "digits",
			Cursor:             "cursors/compass.png",
		},
		Debounce:  0.2,
		ToggleKey: "R",
	}
}

// Load builds the configuration from defaults, an optional YAML or TOML file,
// an optional .env file and MAPWALK_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Walking.Speed = getEnvAsFloat("MAPWALK_SPEED", c.Walking.Speed)
	c.Walking.MapScale = getEnvAsFloat("MAPWALK_MAP_SCALE", c.Walking.MapScale)
	c.Walking.PinScale = getEnvAsFloat("MAPWALK_PIN_SCALE", c.Walking.PinScale)
	c.Measuring.ReferenceScale = getEnvAsFloat("MAPWALK_REFERENCE_SCALE", c.Measuring.ReferenceScale)
	c.Measuring.HitRadius = getEnvAsFloat("MAPWALK_HIT_RADIUS", c.Measuring.HitRadius)
	c.Window.Width = getEnvAsInt("MAPWALK_WIDTH", c.Window.Width)
	c.Window.Height = getEnvAsInt("MAPWALK_HEIGHT", c.Window.Height)
	c.Window.FPS = getEnvAsInt("MAPWALK_FPS", c.Window.FPS)
	c.Window.Fullscreen = getEnvAsBool("MAPWALK_FULLSCREEN", c.Window.Fullscreen)
	c.Assets.Dir = getEnv("MAPWALK_ASSETS", c.Assets.Dir)
	c.Debounce = getEnvAsFloat("MAPWALK_DEBOUNCE", c.Debounce)
	c.ToggleKey = getEnv("MAPWALK_TOGGLE_KEY", c.ToggleKey)
	c.Debug = getEnvAsBool("MAPWALK_DEBUG", c.Debug)
	c.Watch = getEnvAsBool("MAPWALK_WATCH", c.Watch)
}

// Validate rejects values the viewer cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Walking.Speed <= 0 {
		errs = append(errs, fmt.Errorf("walking speed must be positive, got %v", c.Walking.Speed))
	}
	if c.Walking.MapScale <= 0 {
		errs = append(errs, fmt.Errorf("walking map scale must be positive, got %v", c.Walking.MapScale))
	}
	if c.Walking.PinScale <= 0 {
		errs = append(errs, fmt.Errorf("pin scale must be positive, got %v", c.Walking.PinScale))
	}
	if c.Measuring.ReferenceScale <= 0 {
		errs = append(errs, fmt.Errorf("reference scale must be positive, got %v", c.Measuring.ReferenceScale))
	}
	if c.Measuring.HitRadius < 0 {
		errs = append(errs, fmt.Errorf("hit radius must not be negative, got %v", c.Measuring.HitRadius))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Window.FPS))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce must not be negative, got %v", c.Debounce))
	}
	if len(c.ToggleKey) != 1 {
		errs = append(errs, fmt.Errorf("toggle key must be a single character, got %q", c.ToggleKey))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// AssetPath resolves an asset name against the assets directory
func (c *Config) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}
