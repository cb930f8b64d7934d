// Package config manages server settings through viper: built-in defaults,
// an optional color-mcp.toml file, and COLOR_MCP_* environment overrides.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// AppName is used for the config file name and the environment prefix.
const AppName = "color-mcp"

// Configuration keys.
const (
	KeyLogLevel     = "log.level"
	KeyLogJSON      = "log.json"
	KeySwatchCell   = "swatch.cell"
	KeySwatchHeight = "swatch.height"
	KeyCliColored   = "cli.colored"
)

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Field describes one configuration key and its default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides this field.
func (f Field) Env() string {
	return strings.ToUpper(EnvKeyReplacer.Replace(AppName + "." + f.Key))
}

// Default lists every configuration key with its factory value.
var Default = []Field{
	{KeyLogLevel, "info", "Log level: trace, debug, info, warn, error"},
	{KeyLogJSON, false, "Emit logs as JSON instead of text"},
	{KeySwatchCell, 64, "Default swatch cell width in pixels"},
	{KeySwatchHeight, 0, "Default swatch height in pixels (0 = cell width)"},
	{KeyCliColored, true, "Colorize command help output"},
}

// Config is a typed snapshot of the current settings.
type Config struct {
	LogLevel     string
	LogJSON      bool
	SwatchCell   int
	SwatchHeight int
	CliColored   bool
}

// Setup registers defaults and environment bindings and reads color-mcp.toml
// from the working directory if one exists. A missing file is not an error.
func Setup() error {
	viper.SetConfigName(AppName)
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix(EnvKeyReplacer.Replace(AppName))
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	viper.SetTypeByDefaultValue(true)
	for _, f := range Default {
		viper.SetDefault(f.Key, f.Value)
		viper.MustBindEnv(f.Key)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load returns the current settings.
func Load() Config {
	return Config{
		LogLevel:     viper.GetString(KeyLogLevel),
		LogJSON:      viper.GetBool(KeyLogJSON),
		SwatchCell:   viper.GetInt(KeySwatchCell),
		SwatchHeight: viper.GetInt(KeySwatchHeight),
		CliColored:   viper.GetBool(KeyCliColored),
	}
}
