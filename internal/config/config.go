package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `validate:"oneof=json text"`

	// HTTPTimeout bounds every outbound geocoding and weather call.
	HTTPTimeout time.Duration `validate:"gt=0"`

	GeocodingURL string `validate:"required,url"`
	ForecastURL  string `validate:"required,url"`
	Language     string `validate:"required"`

	// ResolveCount is the candidate count requested per resolution strategy.
	ResolveCount int `validate:"min=1,max=100"`
	SuggestCount int `validate:"min=1,max=5"`

	// Typeahead throttling.
	SuggestRPS   float64 `validate:"gt=0"`
	SuggestBurst int     `validate:"min=1"`

	HistoryBackend string `validate:"oneof=file redis memory"`
	HistoryPath    string `validate:"required_if=HistoryBackend file"`
	HistoryKey     string `validate:"required"`

	RedisAddr     string `validate:"required_if=HistoryBackend redis"`
	RedisPassword string
	RedisDB       int `validate:"min=0"`

	// RefreshInterval re-fetches the displayed location periodically (0 = disabled).
	RefreshInterval time.Duration `validate:"min=0"`

	DefaultUnit string `validate:"oneof=celsius fahrenheit"`
}

var validate = validator.New()

// Load reads configuration from an optional .env file and WEATHER_-prefixed
// environment variables, with sensible defaults. A missing .env is ignored; an
// unreadable one is an error.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("WEATHER")
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &AppConfig{
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		HTTPTimeout:     v.GetDuration("HTTP_TIMEOUT"),
		GeocodingURL:    v.GetString("GEOCODING_URL"),
		ForecastURL:     v.GetString("FORECAST_URL"),
		Language:        v.GetString("LANGUAGE"),
		ResolveCount:    v.GetInt("RESOLVE_COUNT"),
		SuggestCount:    v.GetInt("SUGGEST_COUNT"),
		SuggestRPS:      v.GetFloat64("SUGGEST_RPS"),
		SuggestBurst:    v.GetInt("SUGGEST_BURST"),
		HistoryBackend:  v.GetString("HISTORY_BACKEND"),
		HistoryPath:     v.GetString("HISTORY_PATH"),
		HistoryKey:      v.GetString("HISTORY_KEY"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		RefreshInterval: v.GetDuration("REFRESH_INTERVAL"),
		DefaultUnit:     v.GetString("DEFAULT_UNIT"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("HTTP_TIMEOUT", "10s")

	v.SetDefault("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("LANGUAGE", "en")

	v.SetDefault("RESOLVE_COUNT", 50)
	v.SetDefault("SUGGEST_COUNT", 5)
	v.SetDefault("SUGGEST_RPS", 5.0)
	v.SetDefault("SUGGEST_BURST", 10)

	v.SetDefault("HISTORY_BACKEND", "file")
	v.SetDefault("HISTORY_PATH", "weather-history.json")
	v.SetDefault("HISTORY_KEY", "weatherSearchHistory")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("REFRESH_INTERVAL", "0s")
	v.SetDefault("DEFAULT_UNIT", "celsius")
}
