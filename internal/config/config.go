package config

import (
	"fmt"

	pkgConfig "github.com/winning-appliances/service-automation/pkg/config"
)

const serviceName = "service"

type Config struct {
	Service        ServiceConfig
	Database       DatabaseConfig
	Server         ServerConfig
	Log            LogConfig
	Email          EmailConfig
	ServiceOptions ServiceOptionsConfig
	Redis          RedisConfig
	Catalog        CatalogConfig
}

// LoadConfig reads configs/<APP_ENV>/service.yaml with SERVICE_* environment
// overrides.
func LoadConfig() (*Config, error) {
	src, err := pkgConfig.Load(serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return FromSource(src), nil
}

// FromSource assembles a Config, applying defaults for unset keys.
func FromSource(src pkgConfig.Config) *Config {
	r := reader{src}
	return &Config{
		Service:        loadServiceConfig(r),
		Database:       loadDatabaseConfig(r),
		Server:         loadServerConfig(r),
		Log:            loadLogConfig(r),
		Email:          loadEmailConfig(r),
		ServiceOptions: loadServiceOptionsConfig(r),
		Redis:          loadRedisConfig(r),
		Catalog:        loadCatalogConfig(r),
	}
}

type reader struct {
	pkgConfig.Config
}

func (r reader) str(key, def string) string {
	if r.IsSet(key) {
		return r.GetString(key)
	}
	return def
}

func (r reader) integer(key string, def int) int {
	if r.IsSet(key) {
		return r.GetInt(key)
	}
	return def
}
