/*
Package config manages the TOML config for the textguard binary.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/campuslink/textguard/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	Censor CensorConfig `toml:"censor"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxTextLen  int  `toml:"max_text_len"`
	ReportStats bool `toml:"report_stats"`
}

// CensorConfig holds censoring options.
type CensorConfig struct {
	Mask string `toml:"mask"`
}

// CliConfig holds the interactive debug interface options.
type CliConfig struct {
	DefaultCommand string `toml:"default_command"`
	ShowIssues     bool   `toml:"show_issues"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxTextLen:  20000,
			ReportStats: true,
		},
		Censor: CensorConfig{
			Mask: "*",
		},
		CLI: CliConfig{
			DefaultCommand: "analyze",
			ShowIssues:     true,
		},
	}
}

// MaskRune returns the censor mask as a rune, falling back to '*' for an
// empty or multi-rune setting.
func (c *Config) MaskRune() rune {
	runes := []rune(c.Censor.Mask)
	if len(runes) != 1 {
		return '*'
	}
	return runes[0]
}

// GetDefaultConfigPath returns the default path for config.toml, preferring
// ~/.config/textguard and falling back to the executable's directory.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return filepath.Join(execDir, "config.toml"), nil
	}
	return filepath.Join(homeDir, ".config", "textguard", "config.toml"), nil
}

// InitConfig loads config from file or creates the default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := utils.SaveTOMLFile(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file, attempting partial recovery when the
// file does not parse cleanly.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever valid sections a broken TOML file still
// carries, keeping defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(serverSection, "max_text_len"); ok {
			config.Server.MaxTextLen = val
		}
		if val, ok := utils.ExtractBool(serverSection, "report_stats"); ok {
			config.Server.ReportStats = val
		}
	}
	if censorSection, ok := utils.ExtractSection(tempConfig, "censor"); ok {
		if val, ok := utils.ExtractString(censorSection, "mask"); ok {
			config.Censor.Mask = val
		}
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		if val, ok := utils.ExtractString(cliSection, "default_command"); ok {
			config.CLI.DefaultCommand = val
		}
		if val, ok := utils.ExtractBool(cliSection, "show_issues"); ok {
			config.CLI.ShowIssues = val
		}
	}
	return config, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes config values and saves to file.
func (c *Config) Update(configPath string, maxTextLen *int, mask *string) error {
	if maxTextLen != nil {
		c.Server.MaxTextLen = *maxTextLen
	}
	if mask != nil {
		c.Censor.Mask = *mask
	}
	return SaveConfig(c, configPath)
}
