package config

type ServiceConfig struct {
	Name        string
	Environment string
	Version     string
}

type LogConfig struct {
	Level       string
	Format      string
	Output      string
	FilePath    string
	Development bool
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// CompanyName and TeamName sign outgoing notifications.
	CompanyName string
	TeamName    string
}

// Enabled reports whether an SMTP host is configured.
func (c EmailConfig) Enabled() bool {
	return c.Host != ""
}

// Service option source kinds.
const (
	OptionSourceCSV       = "csv"
	OptionSourceSheetsAPI = "sheets_api"
)

// Sheet published by the service team.
const (
	DefaultSheetID   = "16BTtqfZYo0X5c2uPkWLaNC2dSpvkJulFjCk2z3Cms4U"
	DefaultSheetName = "Service Options"
)

type ServiceOptionsConfig struct {
	// Source is csv or sheets_api. Empty disables option lookup.
	Source    string
	CSVURL    string
	SheetID   string
	SheetName string
	APIKey    string
	// Endpoint overrides the Sheets API base URL.
	Endpoint string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	Channel  string
}

type CatalogConfig struct {
	BatchSize        int
	TopManufacturers int
}

func loadServiceConfig(r reader) ServiceConfig {
	return ServiceConfig{
		Name:        r.str("service.name", "Winning Service Automation"),
		Environment: r.str("service.environment", "dev"),
		Version:     r.str("service.version", "1.0.0"),
	}
}

func loadLogConfig(r reader) LogConfig {
	return LogConfig{
		Level:       r.str("log.level", "info"),
		Format:      r.str("log.format", "json"),
		Output:      r.str("log.output", "stdout"),
		FilePath:    r.GetString("log.file_path"),
		Development: r.GetBool("log.development"),
	}
}

func loadEmailConfig(r reader) EmailConfig {
	return EmailConfig{
		Host:     r.GetString("email.host"),
		Port:     r.integer("email.port", 587),
		Username: r.GetString("email.username"),
		Password: r.GetString("email.password"),
		From:     r.str("email.from", `"Winning Service" <service@winning.com.au>`),

		CompanyName: r.str("email.company_name", "Winning Appliances"),
		TeamName:    r.GetString("email.team_name"),
	}
}

func loadServiceOptionsConfig(r reader) ServiceOptionsConfig {
	cfg := ServiceOptionsConfig{
		Source:    r.GetString("service_options.source"),
		CSVURL:    r.GetString("service_options.csv_url"),
		SheetID:   r.str("service_options.sheet_id", DefaultSheetID),
		SheetName: r.str("service_options.sheet_name", DefaultSheetName),
		APIKey:    r.GetString("service_options.api_key"),
		Endpoint:  r.GetString("service_options.endpoint"),
	}
	if cfg.Source == "" && cfg.APIKey != "" {
		cfg.Source = OptionSourceSheetsAPI
	}
	return cfg
}

func loadRedisConfig(r reader) RedisConfig {
	return RedisConfig{
		Enabled:  r.GetBool("redis.enabled"),
		Addr:     r.str("redis.addr", "localhost:6379"),
		Password: r.GetString("redis.password"),
		DB:       r.GetInt("redis.db"),
		Channel:  r.str("redis.channel", "service-automation.events"),
	}
}

func loadCatalogConfig(r reader) CatalogConfig {
	return CatalogConfig{
		BatchSize:        r.integer("catalog.batch_size", 100),
		TopManufacturers: r.integer("catalog.top_manufacturers", 10),
	}
}
