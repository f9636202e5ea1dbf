package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const FileEnvKey = "CONFIG_FILE"

type Config struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	GinMode         string        `yaml:"gin_mode" validate:"oneof=debug release test"`
	LogMode         string        `yaml:"log_mode" validate:"oneof=development production"`
	LogLevel        string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxBatchSize    int           `yaml:"max_batch_size" validate:"min=1,max=10000"`
	HealthURL       string        `yaml:"health_url" validate:"required,url"`
	HealthTimeout   time.Duration `yaml:"health_timeout" validate:"gt=0"`
}

func Default() Config {
	return Config{
		Port:            "8080",
		GinMode:         "release",
		LogMode:         "development",
		LogLevel:        "info",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBatchSize:    100,
		HealthURL:       "http://localhost:8080/health",
		HealthTimeout:   5 * time.Second,
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (falling back to $CONFIG_FILE), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(FileEnvKey)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(apperror.TagNameFunc("yaml"))

	err := v.Struct(c)
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		return fmt.Errorf("invalid config %s: failed on %q rule", e.Field(), e.Tag())
	}
	return err
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"PORT":       &cfg.Port,
		"GIN_MODE":   &cfg.GinMode,
		"LOG_MODE":   &cfg.LogMode,
		"LOG_LEVEL":  &cfg.LogLevel,
		"HEALTH_URL": &cfg.HealthURL,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"READ_TIMEOUT":     &cfg.ReadTimeout,
		"WRITE_TIMEOUT":    &cfg.WriteTimeout,
		"IDLE_TIMEOUT":     &cfg.IdleTimeout,
		"SHUTDOWN_TIMEOUT": &cfg.ShutdownTimeout,
		"HEALTH_TIMEOUT":   &cfg.HealthTimeout,
	}
	for key, dst := range durations {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}

	if v, ok := os.LookupEnv("MAX_BATCH_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_BATCH_SIZE: %w", err)
		}
		cfg.MaxBatchSize = n
	}

	return nil
}
