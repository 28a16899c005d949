// Package config loads the gizmo tool settings from a TOML file and lets
// GIZMO_* environment variables override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/gizmo/engine/core"
	"github.com/spaghettifunk/gizmo/engine/math"
)

// EnvPrefix is prepended to every environment override, e.g. GIZMO_LOG_LEVEL.
const EnvPrefix = "GIZMO"

var ErrInvalidConfig = errors.New("invalid configuration")

type Font struct {
	// Path to a .fnt, .ttf or .otf file. Empty uses the built in atlas.
	Path string `toml:"path"`
	// Point size used when baking a system font.
	Size  float64 `toml:"size"`
	Flip  bool    `toml:"flip"`
	Watch bool    `toml:"watch"`
	// Characters used for ink and background in text previews.
	Ink   string `toml:"ink"`
	Blank string `toml:"blank"`
}

type Camera struct {
	FovY   float32   `toml:"fovy"`
	Aspect float32   `toml:"aspect"`
	Near   float32   `toml:"near"`
	Far    float32   `toml:"far"`
	Eye    []float32 `toml:"eye"`
	Target []float32 `toml:"target"`
	Up     []float32 `toml:"up"`
}

type Config struct {
	LogLevel string `toml:"log_level" split_words:"true"`
	Font     Font   `toml:"font"`
	Camera   Camera `toml:"camera"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Font: Font{
			Size:  12,
			Ink:   "#",
			Blank: ".",
		},
		Camera: Camera{
			FovY:   67,
			Aspect: 16.0 / 9.0,
			Near:   0.1,
			Far:    100,
			Eye:    []float32{0, 0, 5},
			Target: []float32{0, 0, 0},
			Up:     []float32{0, 1, 0},
		},
	}
}

/**
 * @brief Builds the configuration: defaults, then the TOML file at path (a
 * missing file is not an error), then environment overrides.
 *
 * @param path The TOML file. May be empty.
 * @return The validated configuration.
 */
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			core.LogDebug("config file %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				var derr *toml.DecodeError
				if errors.As(err, &derr) {
					row, col := derr.Position()
					return nil, fmt.Errorf("parsing %s:%d:%d: %w", path, row, col, err)
				}
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("%w: font.size must be positive", ErrInvalidConfig)
	}
	if c.Font.Ink == "" || c.Font.Blank == "" {
		return fmt.Errorf("%w: font.ink and font.blank must be set", ErrInvalidConfig)
	}
	return c.Camera.Validate()
}

func (c Camera) Validate() error {
	for name, v := range map[string][]float32{"eye": c.Eye, "target": c.Target, "up": c.Up} {
		if len(v) != 3 {
			return fmt.Errorf("%w: camera.%s needs 3 components, got %d", ErrInvalidConfig, name, len(v))
		}
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		return fmt.Errorf("%w: camera.fovy %v outside (0, 180)", ErrInvalidConfig, c.FovY)
	}
	if c.Aspect <= 0 {
		return fmt.Errorf("%w: camera.aspect must be positive", ErrInvalidConfig)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("%w: camera needs 0 < near < far", ErrInvalidConfig)
	}
	return nil
}

func vec3(v []float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

// View returns the look-at matrix for the configured camera.
func (c Camera) View() math.Mat4 {
	return math.NewMat4LookAt(vec3(c.Eye), vec3(c.Target), vec3(c.Up))
}

func (c Camera) Projection() math.Mat4 {
	return math.NewMat4Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// Encode renders the configuration back to TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
