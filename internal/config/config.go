// Package config provides configuration types and defaults for slashroute.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vltrn/slashroute/internal/log"
)

// Config holds all configuration options for slashroute.
type Config struct {
	Registry    RegistryConfig    `mapstructure:"registry"`
	Suggestions SuggestionsConfig `mapstructure:"suggestions"`
	Tracing     TracingConfig     `mapstructure:"tracing"`
	UI          UIConfig          `mapstructure:"ui"`
	Flags       map[string]bool   `mapstructure:"flags"`
}

// RegistryConfig controls where the registry description is loaded from and how
// strictly it is compiled.
type RegistryConfig struct {
	// Path to a registry YAML file. Empty uses the built-in registry.
	Path string `mapstructure:"path"`

	// Strict rejects registries with key collisions or dangling aliases.
	Strict bool `mapstructure:"strict"`

	// Watch recompiles the registry when the file at Path changes.
	Watch WatchConfig `mapstructure:"watch"`
}

// WatchConfig holds hot reload options.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// SuggestionsConfig holds suggestion engine options.
type SuggestionsConfig struct {
	// Cache memoises suggestion lookups for the lifetime of a compiled registry.
	Cache bool `mapstructure:"cache"`

	// CacheTTL bounds how long a memoised lookup is kept.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// UIConfig holds interactive shell options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
	Width         int    `mapstructure:"width"`          // wrap width for rendered help, 0 = 80
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/slashroute/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/slashroute/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "slashroute", "traces", "traces.jsonl")
}

// Validate checks every section of the configuration.
func (c Config) Validate() error {
	if err := ValidateRegistry(c.Registry); err != nil {
		return err
	}
	if err := ValidateSuggestions(c.Suggestions); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateRegistry checks registry configuration for errors.
func ValidateRegistry(reg RegistryConfig) error {
	if reg.Watch.Debounce < 0 {
		return fmt.Errorf("registry.watch.debounce must not be negative, got %s", reg.Watch.Debounce)
	}
	if reg.Watch.Enabled && reg.Path == "" {
		return fmt.Errorf("registry.path is required when registry.watch.enabled is true")
	}
	return nil
}

// ValidateSuggestions checks suggestion configuration for errors.
func ValidateSuggestions(s SuggestionsConfig) error {
	if s.CacheTTL < 0 {
		return fmt.Errorf("suggestions.cache_ttl must not be negative, got %s", s.CacheTTL)
	}
	return nil
}

// ValidateUI checks interactive shell configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	if ui.Width < 0 {
		return fmt.Errorf("ui.width must not be negative, got %d", ui.Width)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Registry: RegistryConfig{
			Watch: WatchConfig{
				Enabled:  false,
				Debounce: 300 * time.Millisecond,
			},
		},
		Suggestions: SuggestionsConfig{
			Cache:    true,
			CacheTTL: 10 * time.Minute,
		},
		UI: UIConfig{
			MarkdownStyle: "dark",
			Width:         80,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Slashroute Configuration

# Command registry
registry:
  # Path to a registry YAML file (default: built-in registry)
  # path: ./registry.yaml

  # Reject registries with key collisions or dangling aliases (default: false)
  strict: false

  # Recompile the registry when the file changes
  watch:
    enabled: false
    debounce: 300ms

# Suggestion engine
suggestions:
  cache: true       # Memoise prefix lookups per compiled registry
  cache_ttl: 10m

# Interactive shell
ui:
  markdown_style: dark  # "dark" (default) or "light"
  width: 80             # Wrap width for help and topic output

# Distributed tracing configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/slashroute/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)

# Feature flags
# flags:
#   strict-registry: true
#   suggestion-cache: false
#   hot-reload: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
