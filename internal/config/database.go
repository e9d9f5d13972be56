package config

import (
	"fmt"
	"time"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	SlowQueryThreshold time.Duration
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func loadDatabaseConfig(r reader) DatabaseConfig {
	cfg := DatabaseConfig{
		Host:            r.str("database.host", "localhost"),
		Port:            r.integer("database.port", 5432),
		Name:            r.str("database.name", "service_automation"),
		User:            r.str("database.user", "postgres"),
		Password:        r.GetString("database.password"),
		SSLMode:         r.str("database.sslmode", "disable"),
		MaxOpenConns:    r.integer("database.max_open_conns", 10),
		MaxIdleConns:    r.integer("database.max_idle_conns", 5),
		ConnMaxLifetime: r.GetDuration("database.conn_max_lifetime"),
		ConnMaxIdleTime: r.GetDuration("database.conn_max_idle_time"),
	}
	cfg.SlowQueryThreshold = 200 * time.Millisecond
	if r.IsSet("database.slow_query_threshold") {
		cfg.SlowQueryThreshold = r.GetDuration("database.slow_query_threshold")
	}
	return cfg
}
