package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultMaxGenerations bounds how long a simulation may run before it is
// declared non-convergent.
const DefaultMaxGenerations = 10_000

// Config is the optional on-disk configuration of the runner.
type Config struct {
	// Year overrides the year passed to Run when non-zero.
	Year int `yaml:"year"`
	// InputDir is where puzzle inputs are cached, as <InputDir>/<year>/<day>.input.
	InputDir string `yaml:"input_dir"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	// MaxGenerations caps fixed-point simulations.
	MaxGenerations int `yaml:"max_generations"`
}

func DefaultConfig() Config {
	return Config{
		InputDir:       ".",
		SessionFile:    filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		MaxGenerations: DefaultMaxGenerations,
	}
}

// LoadConfig reads the YAML config at path on top of DefaultConfig. A
// missing file is not an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if c.MaxGenerations <= 0 {
		return c, fmt.Errorf("config %s: max_generations must be positive, got %d", path, c.MaxGenerations)
	}
	if c.InputDir == "" {
		c.InputDir = "."
	}
	return c, nil
}
