// Package config loads the static run configuration for codedump.
//
// Configuration is resolved once at startup from, in order of increasing
// precedence: built-in defaults, a codedump.yaml file found in the working
// directory or any parent, environment variables (with an optional .env
// file), and command-line flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds every option recognized for a single run.
type Config struct {
	IncludePaths   []string `yaml:"include_paths"`   // Files or directories considered for inclusion, in order.
	OutputFile     string   `yaml:"output_file"`     // Destination path for the combined artifact.
	FileExtensions []string `yaml:"file_extensions"` // File-name suffixes that qualify a file for inclusion.
	TreeFile       string   `yaml:"tree_file"`       // Optional destination for the collected-file tree; empty disables it.
	IgnoreFile     string   `yaml:"ignore_file"`     // Optional path to a .dumpignore-style pattern file.
	IgnorePatterns []string `yaml:"ignore_patterns"` // Additional ignore pattern lines.
	MaxWorkers     int      `yaml:"max_workers"`     // Number of concurrent file readers; 1 means fully sequential.
}

// Environment variable overrides. A .env file in the working directory is
// honored when present.
const (
	EnvOutputFile = "CODEDUMP_OUTPUT"
	EnvIgnoreFile = "CODEDUMP_IGNORE_FILE"
)

// FileNames are the configuration file names searched for, in order, in the
// working directory and each of its parents.
var FileNames = []string{"codedump.yaml", "codedump.yml"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IncludePaths:   []string{"."},
		OutputFile:     "code_dump.txt",
		FileExtensions: []string{".ts", ".js", ".py", ".html", ".css"},
		MaxWorkers:     4,
	}
}

// Load resolves the configuration from defaults, an optional YAML file and
// the environment. explicitPath forces a specific config file; when empty,
// the file is searched upward from the working directory and its absence is
// not an error.
func Load(explicitPath string, logger *zap.Logger) (Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		logger.Debug("Loaded config file", zap.String("path", path))
	}

	applyEnv(&cfg, logger)
	normalize(&cfg)
	return cfg, nil
}

// findConfigFile walks from the working directory up to the filesystem root
// looking for a config file. Returns "" when none exists.
func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// applyEnv layers environment variables over the configuration. A missing
// .env file is the common case and not worth reporting.
func applyEnv(cfg *Config, logger *zap.Logger) {
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}

	if v := os.Getenv(EnvOutputFile); v != "" {
		cfg.OutputFile = v
	}
	if v := os.Getenv(EnvIgnoreFile); v != "" {
		cfg.IgnoreFile = v
	}
}

// normalize backfills zero values a config file may have blanked out.
func normalize(cfg *Config) {
	if len(cfg.IncludePaths) == 0 {
		cfg.IncludePaths = Default().IncludePaths
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = Default().OutputFile
	}
	if len(cfg.FileExtensions) == 0 {
		cfg.FileExtensions = Default().FileExtensions
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = Default().MaxWorkers
	}
}
