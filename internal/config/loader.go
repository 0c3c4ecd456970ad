package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const courseFile = "course.yaml"

// Load loads the course configuration.
// Search order: customPath -> ~/.pitcourse/configs/course.yaml -> ./configs/course.yaml -> embedded default
//
// Files are layered over the built-in defaults, so a file only needs the
// keys it changes. An unreadable custom path is an error; unreadable files
// in the other locations are skipped.
func Load(customPath string) (CourseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CourseConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(customPath, data)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(courseFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(userCfgPath, data)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", courseFile)
	if data, err := os.ReadFile(localPath); err == nil {
		return parse(localPath, data)
	}

	// Use embedded default YAML
	cfg, err := parse("embedded default", defaultCourseYAML)
	if err != nil {
		return DefaultCourseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(source string, data []byte) (CourseConfig, error) {
	cfg := DefaultCourseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CourseConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return CourseConfig{}, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pitcourse", "configs", filename)
}
