package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig lists the environment variables understood by the server.
// Non-string fields are pointers so unset variables are distinguishable
// from zero values.
type EnvConfig struct {
	EndpointAddrHTTP      string         `envconfig:"HTTP_ADDR"`
	DatabaseDSN           string         `envconfig:"DATABASE_URL"`
	BasePath              string         `envconfig:"BASE_PATH"`
	Locale                string         `envconfig:"LOCALE"`
	TimeZone              string         `envconfig:"APP_TIMEZONE"`
	BcryptCost            *int           `envconfig:"BCRYPT_COST"`
	RunMigrations         *bool          `envconfig:"RUN_MIGRATIONS"`
	TokenAuth             *bool          `envconfig:"TOKEN_AUTH"`
	SecretKey             string         `envconfig:"SECRET_KEY"`
	TokenValidityDuration *time.Duration `envconfig:"TOKEN_VALIDITY"`
	ReleaseMode           *bool          `envconfig:"RELEASE_MODE"`
	LogBackend            string         `envconfig:"LOG_BACKEND"`
}

// parseEnv overlays values taken from the environment. Malformed values
// (e.g. BCRYPT_COST=abc) panic, same as a broken JSON file.
func parseEnv(config *Config) {
	var e EnvConfig
	if err := envconfig.Process("", &e); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, e.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.BasePath, e.BasePath)
	setString(&config.Locale, e.Locale)
	setString(&config.TimeZone, e.TimeZone)
	setString(&config.SecretKey, e.SecretKey)
	setString(&config.LogBackend, e.LogBackend)

	if e.BcryptCost != nil {
		config.BcryptCost = *e.BcryptCost
	}
	if e.TokenValidityDuration != nil {
		config.TokenValidityDuration = *e.TokenValidityDuration
	}

	setBool(&config.RunMigrations, e.RunMigrations)
	setBool(&config.TokenAuth, e.TokenAuth)
	setBool(&config.ReleaseMode, e.ReleaseMode)
}
