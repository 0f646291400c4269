/*
Package config manages the TOML config for keyboard.

A config file is created with defaults the first time it is looked up. Files
with bad values are recovered section by section; anything that cannot be
read falls back to the built-in defaults.

	[cli]
	limit = 4
	prompt = false

	[server]
	max_limit = 64
	max_prefix = 60
	allow_train = true

	[train]
	max_bytes = 0
	pattern = "*.txt"
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/timhillgit/asymmetrik/internal/utils"
)

const appName = "keyboard"

// Config holds the entire config structure
type Config struct {
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
	Train  TrainConfig  `toml:"train"`
}

// CliConfig holds interactive loop options.
type CliConfig struct {
	Limit  int  `toml:"limit"`
	Prompt bool `toml:"prompt"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit   int  `toml:"max_limit"`
	MaxPrefix  int  `toml:"max_prefix"`
	AllowTrain bool `toml:"allow_train"`
}

// TrainConfig controls how training corpora are read.
// MaxBytes of 0 means no size limit.
type TrainConfig struct {
	MaxBytes int    `toml:"max_bytes"`
	Pattern  string `toml:"pattern"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		CLI: CliConfig{
			Limit:  4,
			Prompt: false,
		},
		Server: ServerConfig{
			MaxLimit:   64,
			MaxPrefix:  60,
			AllowTrain: true,
		},
		Train: TrainConfig{
			MaxBytes: 0,
			Pattern:  "*.txt",
		},
	}
}

// GetConfigDir returns the config directory, trying in order
// the user config dir, ~/.config and the executable's dir.
func GetConfigDir() (string, error) {
	if userDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(userDir, appName)
		if utils.IsWritableDir(path) {
			return path, nil
		}
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(homeDir, ".config", appName)
		if utils.IsWritableDir(path) {
			return path, nil
		}
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/keyboard/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to write default config to %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep
// their default values.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// tryPartialParse keeps every key that has the right type and drops the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	sections, err := utils.ParseTOMLSections(configPath)
	if err != nil {
		log.Warnf("No valid configuration in %s. Using all defaults.", configPath)
		return config, nil
	}

	if section, ok := utils.ExtractSection(sections, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(sections, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(sections, "train"); ok {
		extractTrainConfig(section, &config.Train)
	}
	config.sanitize()
	return config, nil
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "limit"); ok {
		cli.Limit = val
	}
	if val, ok := utils.ExtractBool(data, "prompt"); ok {
		cli.Prompt = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractBool(data, "allow_train"); ok {
		server.AllowTrain = val
	}
}

func extractTrainConfig(data map[string]any, train *TrainConfig) {
	if val, ok := utils.ExtractInt(data, "max_bytes"); ok {
		train.MaxBytes = val
	}
	if val, ok := utils.ExtractString(data, "pattern"); ok {
		train.Pattern = val
	}
}

// sanitize resets values that can't be used to their defaults.
func (c *Config) sanitize() {
	defaults := DefaultConfig()
	if c.CLI.Limit < 1 {
		log.Warnf("Invalid cli.limit %d, using %d", c.CLI.Limit, defaults.CLI.Limit)
		c.CLI.Limit = defaults.CLI.Limit
	}
	if c.Server.MaxLimit < 1 {
		log.Warnf("Invalid server.max_limit %d, using %d", c.Server.MaxLimit, defaults.Server.MaxLimit)
		c.Server.MaxLimit = defaults.Server.MaxLimit
	}
	if c.Server.MaxPrefix < 1 {
		log.Warnf("Invalid server.max_prefix %d, using %d", c.Server.MaxPrefix, defaults.Server.MaxPrefix)
		c.Server.MaxPrefix = defaults.Server.MaxPrefix
	}
	if c.Train.MaxBytes < 0 {
		c.Train.MaxBytes = defaults.Train.MaxBytes
	}
	if c.Train.Pattern == "" {
		c.Train.Pattern = defaults.Train.Pattern
	}
	if _, err := filepath.Match(c.Train.Pattern, "corpus.txt"); err != nil {
		log.Warnf("Invalid train.pattern %q, using %q", c.Train.Pattern, defaults.Train.Pattern)
		c.Train.Pattern = defaults.Train.Pattern
	}
}
