package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Output         string `mapstructure:"output"`
	Extension      string `mapstructure:"extension"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	LogFile        string `mapstructure:"log_file"`
	ColorBorder    string `mapstructure:"color_border"`
	ColorHighlight string `mapstructure:"color_highlight"`
	ColorDim       string `mapstructure:"color_dim"`
	ColorTitle     string `mapstructure:"color_title"`
	PlainPreview   bool   `mapstructure:"plain_preview"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("output", "file")
	viper.SetDefault("extension", ".txt")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("log_file", "")
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_highlight", "15") // White background under black text
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_title", "212")
	viper.SetDefault("plain_preview", true)

	viper.SetConfigName("ankimd")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "ankimd"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("ANKIMD")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetOutput returns the export mode: file, print or copy
func GetOutput() string {
	return viper.GetString("output")
}

// GetExtension returns the suffix appended to export file names
func GetExtension() string {
	return viper.GetString("extension")
}

// GetLogLevel returns the minimum log level
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetLogFormat returns text or json
func GetLogFormat() string {
	return viper.GetString("log_format")
}

// GetLogFile returns the log destination with tilde expansion
func GetLogFile() string {
	return expandTilde(viper.GetString("log_file"))
}

func GetColorBorder() string {
	return viper.GetString("color_border")
}

func GetColorHighlight() string {
	return viper.GetString("color_highlight")
}

func GetColorDim() string {
	return viper.GetString("color_dim")
}

func GetColorTitle() string {
	return viper.GetString("color_title")
}

// GetPlainPreview returns whether previews strip markup
func GetPlainPreview() bool {
	return viper.GetBool("plain_preview")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetLogLevel sets the log level at runtime
func SetLogLevel(level string) {
	viper.Set("log_level", level)
	C.LogLevel = level
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
