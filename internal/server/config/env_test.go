package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/garagevault")
	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("TOKEN_VALIDITY_DURATION", "24h")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "postgres://u:p@localhost:5432/garagevault", c.DatabaseDSN)
	assert.Equal(t, "prod-secret", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}

func TestParseEnv_IgnoresMalformedDuration(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY_DURATION", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 7*24*time.Hour, c.TokenValidityDuration)
}

func TestParseEnv_UnsetKeepsDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "dev-insecure-secret", c.SecretKey)
}
