package logger

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
	FileCompress   bool   `yaml:"file_compress"`
}

// fileConfig mirrors Config with pointers for the booleans so an
// omitted key keeps its default instead of reading as false.
type fileConfig struct {
	Logging struct {
		Level          string `yaml:"level"`
		ConsoleEnabled *bool  `yaml:"console_enabled"`
		ConsoleFormat  string `yaml:"console_format"`
		FileEnabled    *bool  `yaml:"file_enabled"`
		FilePath       string `yaml:"file_path"`
		FileFormat     string `yaml:"file_format"`
		FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
		FileMaxBackups int    `yaml:"file_max_backups"`
		FileMaxAgeDays int    `yaml:"file_max_age_days"`
		FileCompress   *bool  `yaml:"file_compress"`
	} `yaml:"logging"`
}

// DefaultConfig logs INFO as text to the console only
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/gridmaze.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig reads the logging section of a YAML file and applies
// environment variable overrides. A missing file yields the defaults;
// a file that does not parse is an error.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := merge(&config, data); err != nil {
				return DefaultConfig(), fmt.Errorf("parse logging config %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return DefaultConfig(), fmt.Errorf("read logging config: %w", err)
		}
	}

	applyEnv(&config)
	return config, nil
}

func merge(config *Config, data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	l := fc.Logging
	if l.Level != "" {
		config.Level = l.Level
	}
	if l.ConsoleEnabled != nil {
		config.ConsoleEnabled = *l.ConsoleEnabled
	}
	if l.ConsoleFormat != "" {
		config.ConsoleFormat = l.ConsoleFormat
	}
	if l.FileEnabled != nil {
		config.FileEnabled = *l.FileEnabled
	}
	if l.FilePath != "" {
		config.FilePath = l.FilePath
	}
	if l.FileFormat != "" {
		config.FileFormat = l.FileFormat
	}
	if l.FileMaxSizeMB > 0 {
		config.FileMaxSizeMB = l.FileMaxSizeMB
	}
	if l.FileMaxBackups > 0 {
		config.FileMaxBackups = l.FileMaxBackups
	}
	if l.FileMaxAgeDays > 0 {
		config.FileMaxAgeDays = l.FileMaxAgeDays
	}
	if l.FileCompress != nil {
		config.FileCompress = *l.FileCompress
	}
	return nil
}

func applyEnv(config *Config) {
	if level := os.Getenv("MAZE_LOG_LEVEL"); level != "" {
		config.Level = level
	}

	if format := os.Getenv("MAZE_LOG_FORMAT"); format != "" {
		config.ConsoleFormat = format
	}

	if fileEnabled := os.Getenv("MAZE_LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("MAZE_LOG_FILE"); filePath != "" {
		config.FilePath = filePath
	}
}
