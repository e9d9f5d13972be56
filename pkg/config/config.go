// Package config loads layered service configuration: an optional .env file,
// a YAML file per environment, and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config exposes read access to loaded settings.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
}

type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string { return c.v.GetString(key) }

func (c *viperConfig) GetInt(key string) int { return c.v.GetInt(key) }

func (c *viperConfig) GetBool(key string) bool { return c.v.GetBool(key) }

func (c *viperConfig) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

func (c *viperConfig) GetStringSlice(key string) []string { return c.v.GetStringSlice(key) }

func (c *viperConfig) IsSet(key string) bool { return c.v.IsSet(key) }

const configDir = "configs"

// Load reads configs/{APP_ENV}/{serviceName}.yaml (or the directory named by
// CONFIG_PATH), falling back to configs/example. Every key can be overridden
// by an environment variable: database.host -> {SERVICENAME}_DATABASE_HOST.
func Load(serviceName string) (Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(configDir, env)
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		v.AddConfigPath(filepath.Join(configDir, "example"))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}

// FromViper wraps an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return &viperConfig{v: v}
}
