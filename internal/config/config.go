// Package config loads fmthook settings from defaults, a project file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ProjectConfigFileName is looked up in the project directory.
const ProjectConfigFileName = ".fmthook.yaml"

// EnvPrefix prefixes environment overrides, e.g. FMTHOOK_LOG_LEVEL.
const EnvPrefix = "FMTHOOK"

// Config holds all fmthook settings.
type Config struct {
	LogLevel           string      `mapstructure:"log_level"           yaml:"log_level"`
	MarkdownExtensions []string    `mapstructure:"markdown_extensions" yaml:"markdown_extensions"`
	Skip               []string    `mapstructure:"skip"                yaml:"skip"`
	Watch              WatchConfig `mapstructure:"watch"               yaml:"watch"`

	configFile string
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// ConfigFile returns the file that was loaded, or "".
func (c *Config) ConfigFile() string {
	return c.configFile
}

// IsMarkdown reports whether path has one of the Markdown extensions.
// The comparison ignores case.
func (c *Config) IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return lo.ContainsBy(c.MarkdownExtensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// SkipMatcher compiles the skip patterns. Patterns match base names.
func (c *Config) SkipMatcher() (func(path string) bool, error) {
	globs := make([]glob.Glob, 0, len(c.Skip))

	for _, pattern := range c.Skip {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("skip pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return func(path string) bool {
		base := filepath.Base(path)

		return lo.SomeBy(globs, func(g glob.Glob) bool { return g.Match(base) })
	}, nil
}

// Validate checks the settings that cannot be checked while decoding.
func (c *Config) Validate() error {
	var errs []error

	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce))
	}

	for _, ext := range c.MarkdownExtensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("markdown extension %q must start with a dot", ext))
		}
	}

	if _, err := c.SkipMatcher(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}

	return out, nil
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectDir is searched for ProjectConfigFileName.
	// If empty, the current working directory is used.
	ProjectDir string

	// File, when set, is loaded instead of the project file and must exist.
	File string

	// SkipEnv skips reading environment variables.
	SkipEnv bool
}

// Load reads configuration in the following order (later sources override
// earlier ones):
//  1. Defaults
//  2. Project config file (./.fmthook.yaml) or opts.File
//  3. Environment variables (FMTHOOK_*)
//
// If opts is nil, default options are used.
func Load(opts *LoadOptions) (*Config, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}

	viperInstance := viper.New()
	setDefaults(viperInstance)
	viperInstance.SetConfigType("yaml")

	configFile := opts.File
	if configFile == "" {
		projectDir := opts.ProjectDir
		if projectDir == "" {
			var err error

			projectDir, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		candidate := filepath.Join(projectDir, ProjectConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}

	if configFile != "" {
		viperInstance.SetConfigFile(configFile)

		if err := viperInstance.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if !opts.SkipEnv {
		viperInstance.SetEnvPrefix(EnvPrefix)
		viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viperInstance.AutomaticEnv()
	}

	var cfg Config
	if err := viperInstance.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.configFile = configFile

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:           DefaultLogLevel,
		MarkdownExtensions: DefaultMarkdownExtensions(),
		Skip:               DefaultSkip(),
		Watch:              WatchConfig{Debounce: DefaultDebounce},
	}
}

// WriteDefault writes a default project config file into dir and returns its
// path. An existing file is left alone.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, ProjectConfigFileName)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	data, err := DefaultConfig().YAML()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
