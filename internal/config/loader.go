package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "snake.yaml"

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var candidates []string
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", configFile))

	return loadSnake(customPath, candidates)
}

func loadSnake(customPath string, candidates []string) (SnakeConfig, error) {
	// An explicit path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Discovered files are skipped when unreadable or broken.
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// fileKeys records which optional keys a file actually sets.
type fileKeys struct {
	Speed struct {
		TickMS *int `yaml:"tick_ms"`
	} `yaml:"speed"`
	Difficulty *string `yaml:"difficulty"`
}

// parseSnake decodes data over the defaults. A difficulty in the file sets
// the tick interval unless the file also sets speed.tick_ms.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}

	var keys fileKeys
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return SnakeConfig{}, err
	}
	if keys.Difficulty != nil && *keys.Difficulty != "" && keys.Speed.TickMS == nil {
		preset, err := ParseDifficulty(*keys.Difficulty)
		if err != nil {
			return SnakeConfig{}, err
		}
		ApplySnakePreset(&cfg, preset)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
