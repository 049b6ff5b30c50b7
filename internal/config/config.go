// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional values (ports, pool sizing, observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it gets loaded into the
	// process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the CARDS_ prefix. The prefix is removed, the key
	is lowercased and "__" marks a nesting level:

		CARDS_DATABASE__HOST               -> database.host
		CARDS_SERVER__CORS_ALLOWED_ORIGINS -> server.cors_allowed_origins
		CARDS_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level

	The plain names used by earlier deployments (PORT, DB_HOST, ...) are
	accepted as aliases, see envAliases.
*/

const (
	// EnvPrefix is the prefix every canonical env var carries.
	EnvPrefix = "CARDS_"

	// ServiceName tags logs and APM data.
	ServiceName = "cards-api"
)

// envAliases maps legacy, unprefixed variable names onto koanf keys.
var envAliases = map[string]string{
	"PORT":        "server.port",
	"DB_HOST":     "database.host",
	"DB_USER":     "database.user",
	"DB_PASSWORD": "database.password",
	"DB_NAME":     "database.name",
	"DB_PORT":     "database.port",
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are used by go-playground/validator
// to enforce that the config is present and populated.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// CORSAllowedOriginSuffixes allows every origin whose host ends with one
	// of these values, e.g. ".vercel.app" for preview deployments.
	CORSAllowedOriginSuffixes []string `koanf:"cors_allowed_origin_suffixes"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// defaults are loaded into koanf before the environment so any env var
// overrides them.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env": "development",

		"server.port":                 "3000",
		"server.read_timeout":         10,
		"server.write_timeout":        10,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"http://localhost:3000", "http://localhost:5173"},

		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  3600,
		"database.conn_max_idle_time": 300,

		// Booleans have to be seeded here; applyDefaults cannot tell an
		// explicit false from an unset one.
		"observability.logging.level":                         "info",
		"observability.logging.format":                        "json",
		"observability.logging.slow_query_threshold":          "100ms",
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.health_checks.enabled":                 true,
		"observability.health_checks.timeout":                 "5s",
		"observability.health_checks.checks":                  []string{"database"},
	}
}

// listKeys are the koanf keys whose env values are comma separated lists.
// koanf's Unmarshal does not split strings into slices on its own, so the
// env callback does it before the value reaches the config tree.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":         true,
	"server.cors_allowed_origin_suffixes": true,
	"observability.health_checks.checks":  true,
}

// envKey turns an environment variable name into a koanf key.
// Returning "" makes the env provider skip the variable.
func envKey(s string) string {
	if key, ok := envAliases[s]; ok {
		return key
	}
	if !strings.HasPrefix(s, EnvPrefix) {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// envValue is the env provider callback. It maps the variable name with
// envKey and, for list keys, splits the value on commas, trimming blanks
// and dropping empty items so "a, b," becomes ["a", "b"].
func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if key == "" || !listKeys[key] {
		return key, value
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and fills in observability
// defaults.
//
// The steps run in this order:
//  1. defaults() is loaded through the confmap provider.
//  2. The process env is layered on top; later providers win, so any
//     variable overrides its default.
//  3. The merged tree is unmarshalled into Config. koanf decodes weakly,
//     so "6543" becomes an int and "250ms" a time.Duration.
//  4. validator checks the required fields.
//  5. Observability gets its service name and environment, then its own
//     validation.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	// Prefix "" so the aliases are visible too; envKey filters the rest.
	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Observability is optional; a nil pointer means nothing was set.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	} else {
		mainConfig.Observability.applyDefaults()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
