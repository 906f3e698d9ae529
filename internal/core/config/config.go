package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Store holds the upstream store API configuration.
	Store StoreConfig `mapstructure:",squash"`

	// Cache holds the optional catalog cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// UI holds storefront UI tuning knobs.
	UI UIConfig `mapstructure:",squash"`
}

// StoreConfig holds the connection details for the upstream VirtuSIM store API.
type StoreConfig struct {
	// BaseURL is the base URL of the upstream store API.
	BaseURL string `mapstructure:"STORE_API_URL" default:"https://minatoz997-chirostore.hf.space"`
	// TimeoutMS is the per-request timeout in milliseconds.
	TimeoutMS int `mapstructure:"STORE_API_TIMEOUT_MS" default:"10000"`
}

// Timeout returns the upstream request timeout as a duration.
func (c StoreConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// CacheConfig holds the catalog cache settings. Caching is disabled when
// RedisURL is empty.
type CacheConfig struct {
	// RedisURL is the Redis connection URL (redis://[:password@]host[:port][/db]).
	RedisURL string `mapstructure:"REDIS_URL"`
	// CatalogTTLSeconds is how long the service catalog stays cached.
	CatalogTTLSeconds int `mapstructure:"CATALOG_CACHE_TTL" default:"60"`
}

// CatalogTTL returns the catalog cache TTL as a duration.
func (c CacheConfig) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLSeconds) * time.Second
}

// UIConfig holds storefront UI parameters.
type UIConfig struct {
	// OrderConfirmDelayMS is how long the order confirmation stays on screen
	// before the storefront returns to the catalog view.
	OrderConfirmDelayMS int `mapstructure:"ORDER_CONFIRM_DELAY_MS" default:"1500"`
}

// OrderConfirmDelay returns the confirmation delay as a duration.
func (c UIConfig) OrderConfirmDelay() time.Duration {
	return time.Duration(c.OrderConfirmDelayMS) * time.Millisecond
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}

	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
