package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT" validate:"required,numeric"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	KafkaBrokers   string `mapstructure:"KAFKA_BROKERS"`
	NatsURL        string `mapstructure:"NATS_URL"`
	JaegerEndpoint string `mapstructure:"JAEGER_ENDPOINT"`

	PSPAPIKey    string `mapstructure:"PSP_API_KEY" validate:"required"`
	PSPBaseURL   string `mapstructure:"PSP_BASE_URL" validate:"required,url"`
	PSPProfileID string `mapstructure:"PSP_PROFILE_ID"`

	WebhookURL           string `mapstructure:"CONNECTOR_WEBHOOK_URL" validate:"required,url"`
	CardComponentEnabled bool   `mapstructure:"CARD_COMPONENT_ENABLED"`

	PlatformTimeout  time.Duration `mapstructure:"PLATFORM_TIMEOUT" validate:"gt=0"`
	WebhookDedupeTTL time.Duration `mapstructure:"WEBHOOK_DEDUPE_TTL" validate:"gt=0"`
}

var defaults = map[string]any{
	"PORT":                   "8080",
	"NATS_URL":               "nats://127.0.0.1:4222",
	"PSP_BASE_URL":           "https://api.mollie.com/v2",
	"CARD_COMPONENT_ENABLED": false,
	"PLATFORM_TIMEOUT":       "5s",
	"WEBHOOK_DEDUPE_TTL":     "2m",
}

var keys = []string{
	"PORT", "DATABASE_URL", "REDIS_URL", "KAFKA_BROKERS", "NATS_URL", "JAEGER_ENDPOINT",
	"PSP_API_KEY", "PSP_BASE_URL", "PSP_PROFILE_ID",
	"CONNECTOR_WEBHOOK_URL", "CARD_COMPONENT_ENABLED",
	"PLATFORM_TIMEOUT", "WEBHOOK_DEDUPE_TTL",
}

// Load reads the environment, after merging an optional .env file, and
// validates the result.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return LoadFrom(viper.New())
}

// LoadFrom builds a Config from v, layering environment variables over the
// defaults.
func LoadFrom(v *viper.Viper) (*Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
