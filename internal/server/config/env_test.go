package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("ADDRESS", ":8081")
	t.Setenv("DATABASE_DSN", "postgres://env/dsn")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "45m")
	t.Setenv("BCRYPT_COST", "11")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a,http://b")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8081", c.EndpointAddr)
	assert.Equal(t, "postgres://env/dsn", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 45*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, 11, c.BcryptCost)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "http://a,http://b", c.CORSAllowedOrigins)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}

func TestParseEnv_KeepsDefaultsWhenUnset(t *testing.T) {
	t.Setenv("ADDRESS", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_VALIDITY", "not-a-duration")
	t.Setenv("BCRYPT_COST", "abc")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":3000", c.EndpointAddr)
	assert.Equal(t, "", c.SecretKey)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 10, c.BcryptCost)
}
