package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	t.Setenv("PSP_API_KEY", "test_key")
	t.Setenv("CONNECTOR_WEBHOOK_URL", "https://connector.example/webhooks")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.mollie.com/v2", cfg.PSPBaseURL)
	assert.False(t, cfg.CardComponentEnabled)
	assert.Equal(t, 5*time.Second, cfg.PlatformTimeout)
	assert.Equal(t, 2*time.Minute, cfg.WebhookDedupeTTL)
}

func TestLoadFromOverrides(t *testing.T) {
	t.Setenv("PSP_API_KEY", "test_key")
	t.Setenv("CONNECTOR_WEBHOOK_URL", "https://connector.example/webhooks")
	t.Setenv("PORT", "9090")
	t.Setenv("CARD_COMPONENT_ENABLED", "true")
	t.Setenv("PLATFORM_TIMEOUT", "750ms")
	t.Setenv("NATS_URL", "nats://nats:4222")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.CardComponentEnabled)
	assert.Equal(t, 750*time.Millisecond, cfg.PlatformTimeout)
	assert.Equal(t, "nats://nats:4222", cfg.NatsURL)
}

func TestLoadFromValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing api key",
			env:  map[string]string{"CONNECTOR_WEBHOOK_URL": "https://connector.example/webhooks"},
		},
		{
			name: "webhook url not a url",
			env:  map[string]string{"PSP_API_KEY": "k", "CONNECTOR_WEBHOOK_URL": "connector"},
		},
		{
			name: "non numeric port",
			env:  map[string]string{"PSP_API_KEY": "k", "CONNECTOR_WEBHOOK_URL": "https://c.example/w", "PORT": "http"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PSP_API_KEY", "")
			t.Setenv("CONNECTOR_WEBHOOK_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom(viper.New())
			assert.Error(t, err)
		})
	}
}
