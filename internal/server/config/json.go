package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
	"github.com/dmitrijs2005/storeadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Booleans are pointers
// so an absent key leaves the current value alone.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	BasePath              string         `json:"base_path"`
	Locale                string         `json:"locale"`
	TimeZone              string         `json:"time_zone"`
	BcryptCost            int            `json:"bcrypt_cost"`
	RunMigrations         *bool          `json:"run_migrations"`
	TokenAuth             *bool          `json:"token_auth"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ReleaseMode           *bool          `json:"release_mode"`
	LogBackend            string         `json:"log_backend"`
}

// parseJson overlays values from the file named by -c / -config. Without
// the flag nothing is loaded. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.BasePath, c.BasePath)
	setString(&config.Locale, c.Locale)
	setString(&config.TimeZone, c.TimeZone)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogBackend, c.LogBackend)

	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}

	setBool(&config.RunMigrations, c.RunMigrations)
	setBool(&config.TokenAuth, c.TokenAuth)
	setBool(&config.ReleaseMode, c.ReleaseMode)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
