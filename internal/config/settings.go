package config

import (
	"errors"
	"fmt"

	"github.com/ivlev/rpp2object/internal/timeline"
	"github.com/spf13/viper"
)

// SettingsName is the settings file looked up in the config directory.
const SettingsName = "rpp2object"

// Load reads the optional settings file from configDir and sets defaults.
// A missing file is not an error; a malformed one is.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("defaults.fps", "60")
	viper.SetDefault("defaults.baseLength", "1.0")
	viper.SetDefault("defaults.scene", DefaultScene)
	viper.SetDefault("defaults.timeControlStep", DefaultTimeControlStep)
	viper.SetDefault("defaults.speedPolicy", "snapped")

	viper.SetDefault("presets.path", "rpp2object_presets.db")

	viper.SetDefault("sentry.dsn", "")
	viper.SetDefault("sentry.environment", "local")

	viper.SetDefault("batch.workers", 0)

	viper.SetConfigName(SettingsName)
	viper.SetConfigType("yaml")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("RPP2OBJECT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

// Defaults builds a CompileConfig from the "defaults" section. Numbers go
// through the same lenient parsing as user input.
func Defaults() CompileConfig {
	cfg := Default()
	cfg.FPS = ParseFPS(viper.GetString("defaults.fps"))
	cfg.BaseLength = ParseBaseLength(viper.GetString("defaults.baseLength"))
	if s := viper.GetString("defaults.scene"); s != "" {
		cfg.SceneNumber = s
	}
	if s := viper.GetString("defaults.timeControlStep"); s != "" {
		cfg.TimeControlStep = s
	}
	if p, err := timeline.ParseSpeedPolicy(viper.GetString("defaults.speedPolicy")); err == nil {
		cfg.SpeedPolicy = p
	}
	return cfg
}
