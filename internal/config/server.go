package config

type ServerConfig struct {
	HTTP HTTPConfig
	GRPC GRPCConfig
}

type HTTPConfig struct {
	Host string
	Port int
	// BodyLimit uses echo's size syntax, e.g. 10M.
	BodyLimit    string
	AllowOrigins []string
}

type GRPCConfig struct {
	Host string
	Port int
}

func loadServerConfig(r reader) ServerConfig {
	origins := r.GetStringSlice("server.http.allow_origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return ServerConfig{
		HTTP: HTTPConfig{
			Host:         r.str("server.http.host", "0.0.0.0"),
			Port:         r.integer("server.http.port", 3000),
			BodyLimit:    r.str("server.http.body_limit", "10M"),
			AllowOrigins: origins,
		},
		GRPC: GRPCConfig{
			Host: r.str("server.grpc.host", "0.0.0.0"),
			Port: r.integer("server.grpc.port", 9090),
		},
	}
}
