package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, "trip-gateway", cfg.App.Name)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Match.TimeoutSec)
	assert.Equal(t, 2, cfg.Match.RetryIntervalSec)
	assert.Equal(t, 15, cfg.Match.ReconnectGrace)
	assert.Equal(t, 1000, cfg.Tracking.PositionIntervalMs)
}

func TestLoadConfig_MatchTimeoutIsClamped(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		want    int
	}{
		{name: "within bounds", timeout: "12", want: 12},
		{name: "above ceiling", timeout: "120", want: 30},
		{name: "zero", timeout: "0", want: 1},
		{name: "negative", timeout: "-5", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MATCH_TIMEOUT", tt.timeout)
			cfg := loadConfigFromEnv()
			assert.Equal(t, tt.want, cfg.Match.TimeoutSec)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "2.5")

	assert.Equal(t, "hello", GetEnv("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_STR_MISSING", "fallback"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_INT_MISSING", 7))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.InDelta(t, 2.5, GetEnvAsFloat("TEST_FLOAT", 1.0), 0.0001)
}
