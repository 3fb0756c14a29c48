package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// SUPPORTBOT_TELEGRAM_TOKEN for telegram.token.
const EnvPrefix = "SUPPORTBOT"

var languageCodeRe = regexp.MustCompile(`^[a-z]{2}_[A-Z]{2}$`)

// LoadConfig reads defaults, then the YAML file at path (a missing file is not
// an error), then SUPPORTBOT_* environment variables, and validates the result.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrConfiguration, path, err)
		}
		slog.Info("Configuration file not found, using defaults and environment", "path", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// Validate checks struct constraints and cross-field rules.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := validate.RegisterValidation("language_code", func(fl validator.FieldLevel) bool {
		return languageCodeRe.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register language_code validation: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return err
	}

	if cfg.Store.Driver == "redis" && cfg.Store.Redis.Addr == "" {
		return errors.New("store.redis.addr is required when store.driver is redis")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", false)

	// Registered so AutomaticEnv can fill them during Unmarshal.
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.support_chat_id", 0)

	v.SetDefault("languages", DefaultLanguages)

	v.SetDefault("store.driver", DefaultStoreDriver)
	v.SetDefault("store.redis.addr", DefaultRedisAddr)
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.key_prefix", DefaultRedisKeyPrefix)
	v.SetDefault("store.sqlite.path", DefaultSQLitePath)

	v.SetDefault("tickets.ttl", DefaultTicketTTL)

	v.SetDefault("scheduler.tasks", DefaultTasks)
}
