// Package config provides configuration management for aicommit.
package config

// Config represents the complete aicommit configuration.
type Config struct {
	// Prompt is the template sent to the generator, with the staged diff
	// appended. Required; no default is substituted.
	Prompt string `mapstructure:"prompt"`
	// MaxPromptSize is the maximum combined byte size of prompt and diff.
	MaxPromptSize int `mapstructure:"max_prompt_size"`

	Generator GeneratorConfig `mapstructure:"generator"`
	History   HistoryConfig   `mapstructure:"history"`
	UI        UIConfig        `mapstructure:"ui"`
}

// GeneratorConfig contains settings for the external AI command.
type GeneratorConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// HistoryConfig contains history-related settings.
type HistoryConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	MaxEntries int    `mapstructure:"max_entries"`
	FilePath   string `mapstructure:"file_path"`
}

// UIConfig contains UI-related settings.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// Manager defines the interface for configuration management.
type Manager interface {
	Load() (*Config, error)
	ConfigExists() bool
	GetConfigPath() string
}
