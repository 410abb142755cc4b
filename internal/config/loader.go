package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// LoadAsteroids loads Asteroid Dodge configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load[AsteroidsConfig]("asteroids.yaml", defaultAsteroidsYAML, DefaultAsteroidsConfig(), customPath)
}

// LoadRocket loads Rocket Rocks configuration.
// Search order: customPath -> ~/.arcade/configs/rocket.yaml -> ./configs/rocket.yaml -> embedded default
func LoadRocket(customPath string) (RocketConfig, error) {
	return load[RocketConfig]("rocket.yaml", defaultRocketYAML, DefaultRocketConfig(), customPath)
}

// load decodes a config file over the embedded defaults, so partial files only
// override the keys they name. A custom path must exist and be valid; the user
// and local files are skipped silently when missing or broken.
func load[T validator](filename string, embedded []byte, fallback T, customPath string) (T, error) {
	base := fallback
	if err := yaml.Unmarshal(embedded, &base); err != nil {
		base = fallback // Fallback to hardcoded if embed fails
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return overlay(base, data, customPath)
	}

	for _, path := range searchPaths(filename) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := overlay(base, data, path); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

func overlay[T validator](base T, data []byte, path string) (T, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
