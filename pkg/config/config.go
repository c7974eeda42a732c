/*
Package config manages TOML config for arkdex services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/roguetea/arkdex/internal/utils"
	"github.com/roguetea/arkdex/pkg/gamedata"
)

// Config holds the entire config structure
type Config struct {
	Data   DataConfig   `toml:"data"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// DataConfig locates the game data sources.
type DataConfig struct {
	Dir              string `toml:"dir"`
	RecruitURL       string `toml:"recruit_url"`
	FetchTimeoutSecs int    `toml:"fetch_timeout_secs"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxQueryLen int `toml:"max_query_len"`
	MaxMessages int `toml:"max_messages"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	SuggestLimit int `toml:"suggest_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:              "ArknightsData/en-US/gamedata/excel",
			RecruitURL:       gamedata.DefaultRecruitURL,
			FetchTimeoutSecs: 10,
		},
		Server: ServerConfig{
			MaxQueryLen: 60,
			MaxMessages: 24,
		},
		CLI: CliConfig{
			SuggestLimit: 10,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/arkdex
// 2. the current working directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		primaryPath := filepath.Join(homeDir, ".config", "arkdex")
		if utils.DirWritable(primaryPath) {
			return primaryPath, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	return os.Getwd()
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
// 2. Default path: [UserConfigDir]/arkdex/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Values absent from the file keep their
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}
