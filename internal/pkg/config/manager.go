package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/aicommit/aicommit/internal/pkg/errors"
)

const (
	// ConfigFileType is the config file format. The config file is a TOML
	// document whose primary key is the prompt template.
	ConfigFileType = "toml"

	// DefaultMaxPromptSize is the default maximum combined byte size of
	// prompt template and staged diff (1MB).
	DefaultMaxPromptSize = 1_000_000

	// DefaultGeneratorCommand is the AI CLI invoked to generate messages.
	DefaultGeneratorCommand = "claude"
)

// DefaultGeneratorArgs is the default argument vector for the generator
// command. The combined prompt is appended as the final argument.
var DefaultGeneratorArgs = []string{"-p"}

// ViperManager implements the Manager interface using Viper.
type ViperManager struct {
	v          *viper.Viper
	configPath string
}

// NewManager creates a new configuration manager for the given TOML file.
// The path is required; there is no default config location.
func NewManager(configPath string) (*ViperManager, error) {
	if configPath == "" {
		return nil, apperrors.New(apperrors.ErrInvalidArguments, "config file path is required")
	}

	v := viper.New()
	v.SetConfigType(ConfigFileType)
	v.SetConfigFile(configPath)

	// Set up environment variable binding
	v.SetEnvPrefix("AICOMMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults first (required for env binding to work with nested keys)
	setDefaults(v)

	// Explicitly bind environment variables for nested keys
	bindEnvVars(v)

	return &ViperManager{
		v:          v,
		configPath: configPath,
	}, nil
}

// bindEnvVars explicitly binds environment variables for all config keys.
// This is needed because Viper's AutomaticEnv doesn't work well with nested keys.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("max_prompt_size", "AICOMMIT_MAX_PROMPT_SIZE")

	// Generator settings
	_ = v.BindEnv("generator.command", "AICOMMIT_GENERATOR_COMMAND")
	_ = v.BindEnv("generator.args", "AICOMMIT_GENERATOR_ARGS")

	// History settings
	_ = v.BindEnv("history.enabled", "AICOMMIT_HISTORY_ENABLED")
	_ = v.BindEnv("history.max_entries", "AICOMMIT_HISTORY_MAX_ENTRIES")
	_ = v.BindEnv("history.file_path", "AICOMMIT_HISTORY_FILE_PATH")

	// UI settings
	_ = v.BindEnv("ui.color_enabled", "AICOMMIT_UI_COLOR_ENABLED")
}

// setDefaults sets the default configuration values.
// The prompt deliberately has no default: a config without one is invalid.
func setDefaults(v *viper.Viper) {
	v.SetDefault("max_prompt_size", DefaultMaxPromptSize)

	// Generator defaults
	v.SetDefault("generator.command", DefaultGeneratorCommand)
	v.SetDefault("generator.args", DefaultGeneratorArgs)

	// History defaults
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 1000)
	homeDir, _ := os.UserHomeDir()
	v.SetDefault("history.file_path", filepath.Join(homeDir, ".aicommit", "history.json"))

	// UI defaults
	v.SetDefault("ui.color_enabled", true)
}

// GetConfigPath returns the path to the configuration file.
func (m *ViperManager) GetConfigPath() string {
	return m.configPath
}

// ConfigExists checks if the configuration file exists.
func (m *ViperManager) ConfigExists() bool {
	_, err := os.Stat(m.configPath)
	return err == nil
}

// Load reads the configuration file and resolves it against environment
// variables and defaults. A missing or unreadable file, malformed TOML, or
// an empty prompt template is a config error.
func (m *ViperManager) Load() (*Config, error) {
	if err := m.v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewInvalidConfigError(
				fmt.Sprintf("config file not found: %s", m.configPath))
		}
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig,
			fmt.Sprintf("failed to read config file %s", m.configPath))
	}

	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to parse config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the resolved configuration for required fields.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Prompt) == "" {
		return apperrors.NewInvalidConfigError(
			"config is missing a 'prompt' value (or it is empty)")
	}
	if cfg.MaxPromptSize <= 0 {
		cfg.MaxPromptSize = DefaultMaxPromptSize
	}
	if cfg.Generator.Command == "" {
		cfg.Generator.Command = DefaultGeneratorCommand
	}
	return nil
}

// InitTemplate is the starter config written by 'aicommit config init'.
const InitTemplate = `# aicommit configuration
#
# The prompt is sent to the generator command with the staged diff appended
# after a blank line. Instruct the model to output only the commit message.
prompt = """
Generate a concise git commit message for the following staged diff.
Use conventional commits format (feat:, fix:, docs:, etc.).
Output only the commit message, nothing else.
"""

# Maximum combined size of prompt + diff in bytes (default: 1000000)
# max_prompt_size = 1000000

[generator]
# command = "claude"
# args = ["-p"]

[history]
# enabled = true
# max_entries = 1000
# file_path = "~/.aicommit/history.json"

[ui]
# color_enabled = true
`

// WriteInitTemplate writes the starter config to the given path.
// Fails if the file already exists.
func WriteInitTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return apperrors.New(apperrors.ErrInvalidArguments,
			fmt.Sprintf("config file already exists: %s", path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.NewFileSystemError(err, dir)
		}
	}

	if err := os.WriteFile(path, []byte(InitTemplate), 0o644); err != nil {
		return apperrors.NewFileSystemError(err, path)
	}
	return nil
}
