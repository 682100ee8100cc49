package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/frog-chase/internal/core"
)

const configFile = "frogchase.yaml"

// LoadFrogChase loads the Frog Chase configuration.
// Search order: customPath -> ~/.frogchase/configs/frogchase.yaml -> ./configs/frogchase.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only changes the keys it names.
func LoadFrogChase(customPath string) (FrogChaseConfig, error) {
	cfg := DefaultFrogChaseConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("%w: read config %s: %w", core.ErrAssetLoad, customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parse config %s: %w", core.ErrAssetLoad, customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFrogChaseYAML, &cfg); err != nil {
		return DefaultFrogChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid files are skipped.
func tryLoad(path string) (FrogChaseConfig, bool) {
	cfg := DefaultFrogChaseConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogchase", "configs", filename)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg FrogChaseConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks that the configuration can drive a round.
func (c FrogChaseConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: invalid config: %s", core.ErrAssetLoad, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return invalid("screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Screen.TileSize <= 0:
		return invalid("tile_size must be positive, got %d", c.Screen.TileSize)
	case c.Sprite.Width <= 0 || c.Sprite.Height <= 0:
		return invalid("sprite must be positive, got %dx%d", c.Sprite.Width, c.Sprite.Height)
	case c.Sprite.Velocity <= 0:
		return invalid("velocity must be positive, got %d", c.Sprite.Velocity)
	case c.Movement.Mode != ModePlanned && c.Movement.Mode != ModeRealtime:
		return invalid("unknown movement mode %q", c.Movement.Mode)
	case c.Movement.MaxPlan <= 0:
		return invalid("max_plan must be positive, got %d", c.Movement.MaxPlan)
	case c.Obstacles.Draws < 0:
		return invalid("obstacle draws must not be negative, got %d", c.Obstacles.Draws)
	case c.Obstacles.Draws > 0 && empty(c.Obstacles.Range):
		return invalid("obstacle range is empty: %+v", c.Obstacles.Range)
	case empty(c.Markers.Range):
		return invalid("marker range is empty: %+v", c.Markers.Range)
	case c.Markers.Tolerance < 0:
		return invalid("marker tolerance must not be negative, got %d", c.Markers.Tolerance)
	case c.Outcome.Goal.MinX > c.Outcome.Goal.MaxX || c.Outcome.Goal.MinY > c.Outcome.Goal.MaxY:
		return invalid("goal window is inverted: %+v", c.Outcome.Goal)
	}

	switch c.Pursuer.Policy {
	case PursuerLiteral, PursuerOff:
	case PursuerProximity:
		if c.Pursuer.Speed <= 0 || c.Pursuer.CatchRadius < 0 {
			return invalid("proximity pursuer needs positive speed, got speed=%d radius=%d",
				c.Pursuer.Speed, c.Pursuer.CatchRadius)
		}
	default:
		return invalid("unknown pursuer policy %q", c.Pursuer.Policy)
	}

	if c.Timing.StepTicks <= 0 || c.Timing.ResultTicks < 0 || c.Timing.HazardTicks < 0 {
		return invalid("timing must be non-negative with positive step_ticks: %+v", c.Timing)
	}
	return nil
}

func empty(r TileRange) bool {
	return r.MaxCol <= r.MinCol || r.MaxRow <= r.MinRow
}

// ParseDifficulty converts a flag value into a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FrogChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Draws = 20
		cfg.Markers.Tolerance = 20
		cfg.Pursuer.Policy = PursuerOff
	case DifficultyHard:
		cfg.Obstacles.Draws = 48
		cfg.Collision.SlackX = 40
		cfg.Collision.SlackY = 40
		cfg.Markers.Tolerance = 0
	}
}
