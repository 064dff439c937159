package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_ADDR", ":9999")
		t.Setenv("DATABASE_URL", "postgres://supabase")
		t.Setenv("BASE_PATH", "/api")
		t.Setenv("LOCALE", "en")
		t.Setenv("APP_TIMEZONE", "Asia/Shanghai")
		t.Setenv("BCRYPT_COST", "12")
		t.Setenv("RUN_MIGRATIONS", "false")
		t.Setenv("TOKEN_AUTH", "true")
		t.Setenv("SECRET_KEY", "env-secret")
		t.Setenv("TOKEN_VALIDITY", "15m")
		t.Setenv("RELEASE_MODE", "true")
		t.Setenv("LOG_BACKEND", "zap")

		var c Config
		c.LoadDefaults()
		parseEnv(&c)

		assert.Equal(t, ":9999", c.EndpointAddrHTTP)
		assert.Equal(t, "postgres://supabase", c.DatabaseDSN)
		assert.Equal(t, "/api", c.BasePath)
		assert.Equal(t, "en", c.Locale)
		assert.Equal(t, "Asia/Shanghai", c.TimeZone)
		assert.Equal(t, 12, c.BcryptCost)
		assert.False(t, c.RunMigrations)
		assert.True(t, c.TokenAuth)
		assert.Equal(t, "env-secret", c.SecretKey)
		assert.Equal(t, 15*time.Minute, c.TokenValidityDuration)
		assert.True(t, c.ReleaseMode)
		assert.Equal(t, "zap", c.LogBackend)
	})

	t.Run("nothing set → no changes", func(t *testing.T) {
		clearEnv(t)

		var c, want Config
		c.LoadDefaults()
		want.LoadDefaults()
		parseEnv(&c)

		assert.Equal(t, want, c)
	})

	t.Run("malformed number → panics", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BCRYPT_COST", "lots")

		var c Config
		require.Panics(t, func() { parseEnv(&c) })
	})
}
