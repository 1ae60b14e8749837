package config

import (
	"Countdown/timer"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// WindowConfig sizes the main window.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config holds the application settings.
type Config struct {
	Language       string       `mapstructure:"language"` // "", "en" or "id"
	FontPath       string       `mapstructure:"font_path"`
	TickIntervalMs int          `mapstructure:"tick_interval_ms"`
	Window         WindowConfig `mapstructure:"window"`
}

const minTickIntervalMs = 10

// Load reads the settings from configPath, or from config.yaml in the usual
// search paths when configPath is empty. COUNTDOWN_* environment variables
// override file values. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/countdown")
	}

	v.SetEnvPrefix("COUNTDOWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("language", "")
	v.SetDefault("font_path", timer.DefaultFontFile)
	v.SetDefault("tick_interval_ms", timer.DefaultTickInterval.Milliseconds())
	v.SetDefault("window.width", timer.WindowWidth)
	v.SetDefault("window.height", timer.WindowHeight)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.TickIntervalMs < minTickIntervalMs {
		log.Printf("Warning: tick_interval_ms %d too low, setting to %d", cfg.TickIntervalMs, minTickIntervalMs)
		cfg.TickIntervalMs = minTickIntervalMs
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		log.Printf("Warning: invalid window size %dx%d, using defaults", cfg.Window.Width, cfg.Window.Height)
		cfg.Window = WindowConfig{Width: timer.WindowWidth, Height: timer.WindowHeight}
	}
	cfg.Language = strings.ToLower(strings.TrimSpace(cfg.Language))

	log.Printf("Configuration loaded: %+v", cfg)
	return &cfg, nil
}

// TickInterval returns the configured tick length.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}
