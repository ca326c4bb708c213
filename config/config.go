package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Scheduling provider (Calendly-shaped availability API).
	CalendlyToken     string `mapstructure:"CALENDLY_TOKEN"`
	CalendlyAPIURL    string `mapstructure:"CALENDLY_API_URL"`
	EventTypeURL      string `mapstructure:"EVENT_TYPE_URL"`
	BookingWebhookURL string `mapstructure:"BOOKING_WEBHOOK_URL"`

	// Messaging provider (WhatsApp Cloud API).
	MetaAPIURL      string `mapstructure:"META_API_URL"`
	MetaAccessToken string `mapstructure:"META_ACCESS_TOKEN"`
	VerifyToken     string `mapstructure:"VERIFY_TOKEN"`

	// Conversation settings.
	Timezone              string `mapstructure:"TIMEZONE"`
	Locale                string `mapstructure:"LOCALE"`
	SessionTimeoutMinutes int    `mapstructure:"SESSION_TIMEOUT_MINUTES"`
	DateLimit             int    `mapstructure:"DATE_LIMIT"`
	DateHorizonDays       int    `mapstructure:"DATE_HORIZON_DAYS"`

	// Redis configuration. Sessions live in memory unless REDIS_ADDR is set.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "10000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CALENDLY_API_URL", "https://api.calendly.com")
	viper.SetDefault("TIMEZONE", "Asia/Jerusalem")
	viper.SetDefault("LOCALE", "ar")
	viper.SetDefault("SESSION_TIMEOUT_MINUTES", 15)
	viper.SetDefault("DATE_LIMIT", 7)
	viper.SetDefault("DATE_HORIZON_DAYS", 30)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Validate checks that the secrets the process cannot run without are present.
// A missing value fails startup rather than producing unauthenticated upstream
// requests later.
func Validate() error {
	required := map[string]string{
		"CALENDLY_TOKEN":      AppConfig.CalendlyToken,
		"EVENT_TYPE_URL":      AppConfig.EventTypeURL,
		"BOOKING_WEBHOOK_URL": AppConfig.BookingWebhookURL,
		"META_API_URL":        AppConfig.MetaAPIURL,
		"META_ACCESS_TOKEN":   AppConfig.MetaAccessToken,
		"VERIFY_TOKEN":        AppConfig.VerifyToken,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("missing required configuration value %s", key)
		}
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
