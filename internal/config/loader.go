package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load decodes a game config.
// Search order: customPath -> ~/.gridtoys/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default
//
// Values absent from the YAML keep the hardcoded defaults in cfg.
func load[T any](gameID, customPath string, cfg T) (T, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			out := cfg
			if err := yaml.Unmarshal(data, &out); err == nil {
				return out, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		out := cfg
		if err := yaml.Unmarshal(data, &out); err == nil {
			return out, nil
		}
	}

	// Use embedded default YAML
	out := cfg
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &out); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return out, nil
}

// LoadParticles loads the falling-sand configuration.
func LoadParticles(customPath string) (ParticlesConfig, error) {
	cfg, err := load("particles", customPath, DefaultParticlesConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris", customPath, DefaultTetrisConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := load("snake", customPath, DefaultSnakeConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadConway loads Game of Life configuration.
func LoadConway(customPath string) (ConwayConfig, error) {
	cfg, err := load("conway", customPath, DefaultConwayConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadRace loads racer configuration. The track itself is read by LoadRaceMap.
func LoadRace(customPath string) (RaceConfig, error) {
	cfg, err := load("race", customPath, DefaultRaceConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadNoise loads noise demo configuration.
func LoadNoise(customPath string) (NoiseConfig, error) {
	cfg, err := load("noise", customPath, DefaultNoiseConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadRaceMap returns the track text at path, or the built-in track when
// path is empty.
func LoadRaceMap(path string) (string, error) {
	if path == "" {
		return string(defaultRaceMap), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read race map %s: %w", path, err)
	}
	return string(data), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridtoys", "configs", filename)
}
