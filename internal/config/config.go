// Package config provides configuration types, defaults, and persistence for pagesmith.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/pagesmith/internal/history"
	"github.com/zjrosen/pagesmith/internal/keys"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/session"
	"github.com/zjrosen/pagesmith/internal/templates"
	"github.com/zjrosen/pagesmith/internal/tracing"
)

// Config holds all configuration options for pagesmith.
type Config struct {
	// Template is the built-in template opened when no --file is given.
	Template   string              `mapstructure:"template"`
	ExportPath string              `mapstructure:"export_path"`
	UI         UIConfig            `mapstructure:"ui"`
	Editor     EditorConfig        `mapstructure:"editor"`
	Keys       map[string][]string `mapstructure:"keys"`
	Tracing    tracing.Config      `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowHelpBar   bool   `mapstructure:"show_help_bar"`
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// EditorConfig tunes the editing session.
type EditorConfig struct {
	HistoryLimit  int    `mapstructure:"history_limit"`
	PastePosition string `mapstructure:"paste_position"` // "after-selection" (default) or "end"
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/pagesmith/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pagesmith", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tc := tracing.DefaultConfig()
	tc.FilePath = DefaultTracesFilePath()
	return Config{
		Template:   templates.DefaultTemplate,
		ExportPath: "site.json",
		UI: UIConfig{
			ShowHelpBar:   true,
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Editor: EditorConfig{
			HistoryLimit:  history.DefaultLimit,
			PastePosition: string(session.PasteAfterSelection),
		},
		Tracing: tc,
	}
}

// SetDefaults registers Defaults with v so that keys missing from the file
// still unmarshal to their default values.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("template", d.Template)
	v.SetDefault("export_path", d.ExportPath)
	v.SetDefault("ui.show_help_bar", d.UI.ShowHelpBar)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("editor.history_limit", d.Editor.HistoryLimit)
	v.SetDefault("editor.paste_position", d.Editor.PastePosition)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	log.Debug(log.CatConfig, "loaded config", "path", path)
	return cfg, nil
}

// Validate checks every section.
func Validate(cfg Config) error {
	return errors.Join(
		ValidateTemplate(cfg.Template),
		ValidateUI(cfg.UI),
		ValidateEditor(cfg.Editor),
		ValidateKeys(cfg.Keys),
		ValidateTracing(cfg.Tracing),
	)
}

// ValidateTemplate checks that name is a built-in template. Empty uses the default.
func ValidateTemplate(name string) error {
	if name == "" {
		return nil
	}
	if _, err := templates.Load(name); err != nil {
		return fmt.Errorf("template: %w", err)
	}
	return nil
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// ValidateEditor checks editor configuration for errors.
func ValidateEditor(ed EditorConfig) error {
	if ed.HistoryLimit < 0 {
		return fmt.Errorf("editor.history_limit must not be negative, got %d", ed.HistoryLimit)
	}
	if _, err := session.ParsePastePosition(ed.PastePosition); err != nil {
		return fmt.Errorf("editor.paste_position: %w", err)
	}
	return nil
}

// ValidateKeys checks that every overridden action exists.
func ValidateKeys(overrides map[string][]string) error {
	if _, err := keys.DefaultKeyMap().WithOverrides(overrides); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tc tracing.Config) error {
	if tc.SampleRate < 0.0 || tc.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tc.SampleRate)
	}

	if tc.Exporter != "" {
		switch tc.Exporter {
		case tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tc.Exporter)
		}
	}

	// Path requirements only matter when tracing is on.
	if tc.Enabled {
		if tc.Exporter == tracing.ExporterFile && tc.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tc.Exporter == tracing.ExporterOTLP && tc.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Pagesmith Configuration

# Built-in template opened when no --file is given
# (run 'pagesmith templates' to list them)
template: blank

# Where ctrl+s writes the site JSON
export_path: site.json

# UI settings
ui:
  show_help_bar: true     # Show key hints under the canvas
  show_status_bar: true   # Show status bar at bottom
  # markdown_style: dark  # Text block preview style: "dark" (default) or "light"

# Editing session
editor:
  history_limit: 100               # Undo steps kept (0 keeps every step)
  paste_position: after-selection  # after-selection (default) or end

# Key overrides: action name to list of keys. An empty list disables the action.
# Actions: add, copy, cut, delete, down, duplicate, edit, escape, export, help,
#          history, move_down, move_up, paste, quit, redo, undo, up, yank
# keys:
#   undo: [ctrl+z, u]
#   yank: []

# Tracing of editing operations
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/pagesmith/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
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
